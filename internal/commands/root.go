// Package commands provides CLI commands for the LoadMove assistant.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	sessionFlag string
	listingFlag string
	tripFlag    string
	outputFlag  string
	fileFlag    string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "loadmove-assistant [prompt]",
	Short: "CLI for the LoadMove AI assistant",
	Long: `loadmove-assistant is a command-line interface for the LoadMove freight
assistant. It finds loads that match your profile, recommends pricing,
forecasts earnings and plans routes across Ghana's corridors.

Examples:
  loadmove-assistant chat                      Start interactive chat
  loadmove-assistant sessions                  List your chat sessions
  loadmove-assistant quick suggest_loads       Run a one-shot action
  loadmove-assistant "Find loads from Tema"    Send a single question
  cat question.md | loadmove-assistant         Read question from stdin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("loadmove-assistant %s (built %s)\n", Version, BuildTime)
			return nil
		}

		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data))
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data))
		}

		if len(args) > 0 {
			return runQuery(args[0])
		}

		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sessionFlag, "session", "s", "", "Chat session ID to continue")
	rootCmd.PersistentFlags().StringVar(&listingFlag, "listing", "", "Listing ID to anchor the conversation to")
	rootCmd.PersistentFlags().StringVar(&tripFlag, "trip", "", "Trip ID to anchor the conversation to")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save response to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read question from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(quickCmd)
	rootCmd.AddCommand(suggestionsCmd)
	rootCmd.AddCommand(configCmd)
}
