package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sis-intake-server/internal/domain"
)

func TestNewManager_Defaults(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	cfg := m.GetConfig()
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "./data/sessions.db", cfg.Database.Path)

	assert.Equal(t, 60*time.Second, cfg.TextGen.Timeout)
	assert.Equal(t, 2, cfg.TextGen.RateLimit)
	assert.Equal(t, 128, cfg.TextGen.CacheSize)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	assert.NoError(t, m.Validate())
}

func TestManager_Accessors(t *testing.T) {
	m, err := NewManager()
	require.NoError(t, err)

	assert.Equal(t, m.GetConfig().Server, *m.GetServerConfig())
	assert.Equal(t, m.GetConfig().Database, *m.GetDatabaseConfig())
	assert.Equal(t, m.GetConfig().TextGen, *m.GetTextGenConfig())
}

func TestValidate(t *testing.T) {
	valid := domain.Config{
		Server:   domain.ServerConfig{Host: "0.0.0.0", Port: 8080},
		Database: domain.DatabaseConfig{Driver: "sqlite", Path: "./data/sessions.db"},
		Logging:  domain.LoggingConfig{Level: "info", Format: "json"},
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{"valid", func(*domain.Config) {}, ""},
		{"zero port", func(c *domain.Config) { c.Server.Port = 0 }, "invalid server port"},
		{"port too high", func(c *domain.Config) { c.Server.Port = 70000 }, "invalid server port"},
		{"sqlite without path", func(c *domain.Config) { c.Database.Path = "" }, "sqlite database path is required"},
		{"postgres without url", func(c *domain.Config) { c.Database.Driver = "postgres" }, "postgres database URL is required"},
		{"postgres with url", func(c *domain.Config) {
			c.Database.Driver = "postgres"
			c.Database.URL = "postgres://localhost/sis"
		}, ""},
		{"unknown driver", func(c *domain.Config) { c.Database.Driver = "oracle" }, "unknown database driver"},
		{"bad log level", func(c *domain.Config) { c.Logging.Level = "verbose" }, "invalid log level"},
		{"upper-case log level ok", func(c *domain.Config) { c.Logging.Level = "DEBUG" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			m := &Manager{config: &cfg}
			err := m.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
