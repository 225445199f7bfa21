package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/api"
)

var suggestionLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bb9af7")).Bold(true)

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "Show suggested prompts",
	Long:  `Show prompts tailored to your role, usable as chat starters.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuggestions()
	},
}

func runSuggestions() error {
	_, client, err := loadConfigAndClient()
	if err != nil {
		return err
	}
	if c, ok := client.(*api.Client); ok {
		defer c.Close()
	}

	prompts, err := client.GetSuggestions(context.Background())
	if err != nil {
		return err
	}

	if len(prompts) == 0 {
		fmt.Println("No suggestions right now.")
		return nil
	}

	for _, p := range prompts {
		label := p.Label
		if p.Icon != "" {
			label = p.Icon + " " + label
		}
		fmt.Println(suggestionLabelStyle.Render(label))
		fmt.Println("  " + p.Message)
	}
	return nil
}
