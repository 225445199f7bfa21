package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/config"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change client settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow()
	},
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-token [token]",
	Short: "Store the access token",
	Long: `Store the bearer token used to authenticate with the assistant
service. With no argument the token is read from the terminal without
echo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := ""
		if len(args) > 0 {
			token = args[0]
		}
		return runConfigSetToken(token)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting. Keys:
  base_url            Assistant service URL
  timeout             Request timeout in seconds
  page_size           Sessions per page (max 50)
  copy_to_clipboard   true or false
  markdown_style      dark, light, or a theme file path`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSet(args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetTokenCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	configPath, _ := config.GetConfigPath()

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = models.DefaultBaseURL
	}
	token := "(not set)"
	if cfg.AccessToken != "" {
		token = "(set)"
	}

	fmt.Println("Config file:       " + configPath)
	fmt.Println("Base URL:          " + baseURL)
	fmt.Println("Access token:      " + token)
	fmt.Printf("Timeout:           %ds\n", cfg.TimeoutSeconds)
	fmt.Printf("Page size:         %d\n", cfg.PageSize)
	fmt.Printf("Copy to clipboard: %t\n", cfg.CopyToClipboard)
	fmt.Println("Markdown style:    " + cfg.Markdown.Style)
	return nil
}

func runConfigSetToken(token string) error {
	if token == "" {
		fmt.Fprint(os.Stderr, "Access token: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}
	if token == "" {
		return fmt.Errorf("empty token")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	cfg.AccessToken = token
	if err := config.SaveConfig(cfg); err != nil {
		return err
	}
	fmt.Println("Token saved.")
	return nil
}

func runConfigSet(key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "base_url":
		cfg.BaseURL = strings.TrimRight(value, "/")
	case "timeout":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("timeout must be a positive integer")
		}
		cfg.TimeoutSeconds = n
	case "page_size":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 || n > 50 {
			return fmt.Errorf("page_size must be between 1 and 50")
		}
		cfg.PageSize = n
	case "copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("copy_to_clipboard must be true or false")
		}
		cfg.CopyToClipboard = b
	case "markdown_style":
		cfg.Markdown.Style = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}
	fmt.Printf("%s updated.\n", key)
	return nil
}
