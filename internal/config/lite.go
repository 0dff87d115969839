// Package config loads the service configuration. This file contains the
// lightweight environment-only configuration for the standalone session tool.
package config

import (
	"os"
	"path/filepath"
)

// LiteConfig is a simplified configuration for standalone operation. It needs
// no config file and no external databases.
type LiteConfig struct {
	DataDir string // Base directory for the session database and exports

	LogLevel  string // Log level: debug, info, warn, error
	LogFormat string // Log format: json, text
}

// DefaultLiteConfig returns a configuration with sensible defaults.
func DefaultLiteConfig() *LiteConfig {
	homeDir, _ := os.UserHomeDir()
	return &LiteConfig{
		DataDir:   filepath.Join(homeDir, ".sis-intake"),
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadLiteConfig loads configuration from environment variables, falling back
// to defaults when unset.
func LoadLiteConfig() *LiteConfig {
	cfg := DefaultLiteConfig()

	if v := os.Getenv("SIS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("SIS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SIS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return cfg
}

// SessionDBPath returns the path to the session SQLite database.
func (c *LiteConfig) SessionDBPath() string {
	return filepath.Join(c.DataDir, "sessions.db")
}

// ExportDir returns the directory for JSON exports.
func (c *LiteConfig) ExportDir() string {
	return filepath.Join(c.DataDir, "exports")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c *LiteConfig) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return err
	}
	return os.MkdirAll(c.ExportDir(), 0755)
}
