// Package config handles configuration for chatscreen.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/diogo/chatscreen/internal/errors"
)

// DefaultCannedReply is the body of every System reply unless configured otherwise.
const DefaultCannedReply = "This is a **dummy response** rendered as markdown."

// DefaultReplyDelayMs is the fixed delay between a submission and its reply.
const DefaultReplyDelayMs = 1000

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`             // glamour style name or path to JSON theme
	EnableEmoji      bool   `json:"enable_emoji"`      // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"` // Preserve original line breaks
}

// Config represents the user configuration
type Config struct {
	Title string `json:"title"`
	// ReplyDelayMs is the delay before the canned reply is appended.
	ReplyDelayMs int    `json:"reply_delay_ms"`
	CannedReply  string `json:"canned_reply"`
	// LogFile receives debug output. The terminal belongs to the TUI, so
	// logs never go to stdout or stderr.
	LogFile         string         `json:"log_file,omitempty"`
	LogLevel        string         `json:"log_level"`
	CopyToClipboard bool           `json:"copy_to_clipboard"`
	TUITheme        string         `json:"tui_theme,omitempty"`
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
		Title:           "Chat",
		ReplyDelayMs:    DefaultReplyDelayMs,
		CannedReply:     DefaultCannedReply,
		LogLevel:        "info",
		CopyToClipboard: true,
		TUITheme:        "tokyonight",
		Markdown:        DefaultMarkdownConfig(),
	}
}

// ReplyDelay returns the configured reply delay as a duration.
func (c Config) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelayMs) * time.Millisecond
}

// Validate checks the configuration for values the screen cannot use.
func (c Config) Validate() error {
	if c.ReplyDelayMs < 0 {
		return apperrors.NewConfigError("reply_delay_ms", "must not be negative")
	}
	if strings.TrimSpace(c.CannedReply) == "" {
		return apperrors.NewConfigError("canned_reply", "must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return apperrors.NewConfigError("log_level", fmt.Sprintf("unknown level %q", c.LogLevel))
	}
	return nil
}

// GetConfigDir returns the configuration directory path.
// CHATSCREEN_CONFIG_DIR overrides the default ~/.chatscreen.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("CHATSCREEN_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".chatscreen"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

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

// GetLogPath returns the log file from config, defaulting to the config dir
func GetLogPath(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "chatscreen.log"), nil
}

// ReadRaw returns the raw bytes of the config file, or nil if it doesn't exist
func ReadRaw() ([]byte, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return data, nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	data, err := ReadRaw()
	if err != nil {
		return cfg, err
	}
	if data == nil {
		return cfg, nil // Use defaults if config doesn't exist
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
