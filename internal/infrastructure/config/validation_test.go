package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "search engine without scheme",
			mutate:  func(c *Config) { c.SearchEngine = "duckduckgo.com/?q=" },
			wantErr: "search_engine must use http or https",
		},
		{
			name:    "empty suggestion host",
			mutate:  func(c *Config) { c.Suggestions.Host = "" },
			wantErr: "suggestions.host cannot be empty",
		},
		{
			name: "disabled suggestions ignore host",
			mutate: func(c *Config) {
				c.Suggestions.Enabled = false
				c.Suggestions.Host = ""
			},
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *Config) { c.Suggestions.RequestTimeoutMs = 0 },
			wantErr: "suggestions.request_timeout_ms",
		},
		{
			name:    "negative fallback timeout",
			mutate:  func(c *Config) { c.Suggestions.FallbackTimeoutMs = -1 },
			wantErr: "suggestions.fallback_timeout_ms",
		},
		{
			name:    "too many results",
			mutate:  func(c *Config) { c.Suggestions.MaxResults = 7 },
			wantErr: "suggestions.max_results must be between 1 and 6 (got: 7)",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level",
		},
		{
			name:    "bad palette color",
			mutate:  func(c *Config) { c.Appearance.DarkPalette.Accent = "blue" },
			wantErr: "appearance.dark_palette.accent",
		},
		{
			name:    "empty tab name",
			mutate:  func(c *Config) { c.Appearance.TabName = " " },
			wantErr: "appearance.tab_name",
		},
		{
			name:    "negative quote interval",
			mutate:  func(c *Config) { c.Appearance.QuoteInterval = -1 },
			wantErr: "appearance.quote_interval must be 0 (hidden) or a number of minutes (got: -1)",
		},
		{
			name:   "hidden quote",
			mutate: func(c *Config) { c.Appearance.QuoteInterval = 0 },
		},
		{
			name:    "missing database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: "database.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := withDatabasePath(DefaultConfig())
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := withDatabasePath(DefaultConfig())
	cfg.SearchEngine = ""
	cfg.Suggestions.MaxResults = 0

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search_engine cannot be empty")
	assert.Contains(t, err.Error(), "suggestions.max_results")
}
