package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/api"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/chat"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the LoadMove assistant.

A new session is created unless --session points at an existing one.
Type 'exit', 'quit', or press Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	_, client, err := loadConfigAndClient()
	if err != nil {
		return err
	}
	if c, ok := client.(*api.Client); ok {
		defer c.Close()
	}

	ctx := context.Background()

	var conv *chat.Conversation
	if sessionFlag != "" {
		conv = chat.NewConversation(client, sessionFlag)
	} else {
		spin := newSpinner("Starting session")
		spin.start()
		conv, err = chat.StartConversation(ctx, client, "")
		if err != nil {
			spin.stopWithError()
			return fmt.Errorf("failed to start session: %w", err)
		}
		spin.stopWithSuccess("Session started")
	}

	conv.SetContext(listingFlag, tripFlag)

	return tui.RunChat(conv)
}
