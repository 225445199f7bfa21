package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/api"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/interpret"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/render"
)

var sessionsPageFlag int

var (
	sessionIDStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true)
	sessionTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	sessionMetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List your chat sessions",
	Long:  `List active chat sessions, most recently updated first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSessionsList(sessionsPageFlag)
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session's message history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSessionsShow(args[0])
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Archive a chat session",
	Long: `Archive a chat session. The session disappears from listings but its
history is retained by the service. Deleting an already archived or
unknown session succeeds quietly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSessionsDelete(args[0])
	},
}

func init() {
	sessionsCmd.Flags().IntVarP(&sessionsPageFlag, "page", "p", 1, "Page of sessions to list")
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}

func runSessionsList(page int) error {
	_, client, err := loadConfigAndClient()
	if err != nil {
		return err
	}
	if c, ok := client.(*api.Client); ok {
		defer c.Close()
	}

	sessions, err := client.GetSessions(context.Background(), page)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		if page > 1 {
			fmt.Printf("No sessions on page %d.\n", page)
		} else {
			fmt.Println("No sessions yet. Start one with 'loadmove-assistant chat'.")
		}
		return nil
	}

	for _, s := range sessions {
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Println(sessionIDStyle.Render(s.ID))
		fmt.Println("  " + sessionTitleStyle.Render(title))
		fmt.Println("  " + sessionMetaStyle.Render(fmt.Sprintf(
			"%d messages, updated %s", s.MessageCount, s.UpdatedAt.Format("2006-01-02 15:04"))))
	}
	return nil
}

func runSessionsShow(sessionID string) error {
	cfg, client, err := loadConfigAndClient()
	if err != nil {
		return err
	}
	if c, ok := client.(*api.Client); ok {
		defer c.Close()
	}

	detail, err := client.GetSession(context.Background(), sessionID)
	if err != nil {
		return err
	}

	title := detail.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Println(sessionIDStyle.Render(title) + " " + sessionMetaStyle.Render(detail.ID))

	width := render.TerminalWidth()
	opts := render.FromConfig(cfg.Markdown).WithWidth(width)

	for _, msg := range detail.Messages {
		switch {
		case msg.IsUser():
			fmt.Println(sessionTitleStyle.Render("You: ") + msg.Content)
		case msg.IsAssistant():
			rendered, rerr := render.Markdown(msg.Content, opts)
			if rerr != nil {
				rendered = msg.Content
			}
			fmt.Println(sessionIDStyle.Render("Assistant:"))
			fmt.Println(strings.TrimRight(rendered, "\n"))
			if cards := render.Cards(interpret.InterpretAll(msg), width); cards != "" {
				fmt.Println(cards)
			}
		case msg.Role == models.RoleTool:
			fmt.Println(sessionMetaStyle.Render("tool: " + msg.Content))
		}
	}
	return nil
}

func runSessionsDelete(sessionID string) error {
	_, client, err := loadConfigAndClient()
	if err != nil {
		return err
	}
	if c, ok := client.(*api.Client); ok {
		defer c.Close()
	}

	if err := client.DeleteSession(context.Background(), sessionID); err != nil {
		return err
	}
	fmt.Printf("Session %s archived.\n", sessionID)
	return nil
}
