package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	// Store holds vault file settings.
	Store StoreConfig `json:"store" mapstructure:"store"`

	// Log holds logging behavior.
	Log LogConfig `json:"log" mapstructure:"log"`
}

// StoreConfig for the persisted vault file.
type StoreConfig struct {
	// Path of the vault JSON file.
	Path string `json:"path" mapstructure:"path"`

	// Language used for new stores and unrecognized ledger languages.
	Language string `json:"language" mapstructure:"language"`
}

// LogConfig for logging behavior.
type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `json:"format" mapstructure:"format"` // text, json
	File   string `json:"file" mapstructure:"file"`     // log file path (empty = stderr)
	Color  bool   `json:"color" mapstructure:"color"`   // enable colored output
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() *Config {
	dataDir := ".tagihan"
	if homeDir, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(homeDir, ".tagihan")
	}

	return &Config{
		Store: StoreConfig{
			Path:     filepath.Join(dataDir, "tagihan_data.json"),
			Language: "id",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Color:  true,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("store.path is required")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	return nil
}
