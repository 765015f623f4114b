package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerWatch_ReloadsExternalEdit(t *testing.T) {
	isolateXDG(t)
	mgr := loadManager(t)

	changes := make(chan *Config, 4)
	mgr.OnConfigChange(func(cfg *Config) { changes <- cfg })
	require.NoError(t, mgr.Watch(context.Background()))
	require.NoError(t, mgr.Watch(context.Background()), "second Watch is a no-op")

	edited := mgr.Get()
	edited.SearchEngine = "https://duckduckgo.com/?q="
	require.NoError(t, WriteConfigOrdered(edited, mgr.GetConfigFile()))

	select {
	case cfg := <-changes:
		assert.Equal(t, "https://duckduckgo.com/?q=", cfg.SearchEngine)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after external edit")
	}
	assert.Equal(t, "https://duckduckgo.com/?q=", mgr.Get().SearchEngine)
}
