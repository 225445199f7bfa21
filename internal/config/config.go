// Package config handles configuration and credential storage for the
// LoadMove assistant client.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`             // "dark", "light", or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji"`      // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"` // Preserve original line breaks
}

// Config represents the user configuration
type Config struct {
	// BaseURL overrides the production assistant endpoint. Empty means
	// use models.DefaultBaseURL.
	BaseURL string `json:"base_url,omitempty"`
	// AccessToken is the bearer token issued by the auth service. Token
	// lifecycle (login, refresh) is handled outside this client.
	AccessToken string `json:"access_token,omitempty"`
	// TimeoutSeconds bounds every request to the assistant service.
	// Default is 60.
	TimeoutSeconds int `json:"timeout_seconds"`
	// PageSize is the number of sessions fetched per page. Default 20,
	// service maximum 50.
	PageSize int `json:"page_size"`
	// CopyToClipboard copies quick action replies to the clipboard.
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	Markdown        MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		TimeoutSeconds:  60,
		PageSize:        20,
		CopyToClipboard: false,
		Markdown:        DefaultMarkdownConfig(),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".loadmove"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	// 0o700: the directory holds the access token
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 60
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// 0o600: the file contains the access token
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
