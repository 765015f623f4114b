package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://www.google.com/search?q=", cfg.SearchEngine)
	assert.True(t, cfg.Suggestions.Enabled)
	assert.Equal(t, 6, cfg.Suggestions.MaxResults)
	assert.Equal(t, "3s", cfg.Suggestions.FallbackTimeout().String())
	assert.Equal(t, "axis", cfg.Appearance.UserName)
	assert.Equal(t, "Orbit", cfg.Appearance.TabName)
	assert.Equal(t, 30, cfg.Appearance.QuoteInterval)
	assert.NoError(t, validateConfig(withDatabasePath(cfg)))
}

func withDatabasePath(cfg *Config) *Config {
	cfg.Database.Path = "/tmp/orbit.sqlite"
	return cfg
}
