package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/orbit/internal/domain/entity"
)

// isolateXDG points every XDG base directory into a temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func loadManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	return mgr
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, defaultSearchEngine, mgr.viper.GetString("search_engine"))
	assert.True(t, mgr.viper.GetBool("suggestions.enabled"))
	assert.Equal(t, defaultFallbackTimeoutMs, mgr.viper.GetInt("suggestions.fallback_timeout_ms"))
	assert.Equal(t, "#4a9eff", mgr.viper.GetString("appearance.dark_palette.accent"))
}

func TestManagerLoad_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr := loadManager(t)
	cfg := mgr.Get()

	configFile := filepath.Join(root, "config", "orbit", "config.toml")
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", "orbit", "config.schema.json"))
	assert.Equal(t, configFile, mgr.GetConfigFile())

	assert.Equal(t, defaultSearchEngine, cfg.SearchEngine)
	assert.Equal(t, filepath.Join(root, "data", "orbit", "orbit.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "state", "orbit", "logs"), cfg.Logging.LogDir)
}

func TestManagerLoad_ReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", "orbit")
	require.NoError(t, os.MkdirAll(configDir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
search_engine = "https://duckduckgo.com/?q="

[suggestions]
max_results = 4

[appearance]
user_name = "vega"
quote_interval = 5
`), filePerm))
	t.Setenv("ORBIT_LOG_LEVEL", "DEBUG")

	cfg := loadManager(t).Get()

	assert.Equal(t, "https://duckduckgo.com/?q=", cfg.SearchEngine)
	assert.Equal(t, 4, cfg.Suggestions.MaxResults)
	assert.Equal(t, defaultRequestTimeoutMs, cfg.Suggestions.RequestTimeoutMs)
	assert.Equal(t, "vega", cfg.Appearance.UserName)
	assert.Equal(t, "Orbit", cfg.Appearance.TabName)
	assert.Equal(t, 5, cfg.Appearance.QuoteInterval)
	assert.Empty(t, cfg.Appearance.QuoteFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManagerLoad_InvalidConfig(t *testing.T) {
	root := isolateXDG(t)
	configDir := filepath.Join(root, "config", "orbit")
	require.NoError(t, os.MkdirAll(configDir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[suggestions]
max_results = 40
`), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "suggestions.max_results")
}

func TestManagerSave_RoundTrip(t *testing.T) {
	isolateXDG(t)
	mgr := loadManager(t)

	cfg := mgr.Get()
	cfg.Appearance.Greeting = "hello there"
	require.NoError(t, mgr.Save(cfg))

	reloaded := loadManager(t).Get()
	assert.Equal(t, "hello there", reloaded.Appearance.Greeting)
}

func TestManagerSave_RejectsInvalid(t *testing.T) {
	isolateXDG(t)
	mgr := loadManager(t)

	cfg := mgr.Get()
	cfg.SearchEngine = "not a url"

	require.Error(t, mgr.Save(cfg))
	assert.Equal(t, defaultSearchEngine, mgr.Get().SearchEngine)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SearchEngine = "  https://example.com/?q= "
	cfg.Suggestions.Host = "https://suggest.example.com/"
	cfg.Logging.Format = "TEXT"
	cfg.Appearance.TabName = ""
	cfg.Appearance.DarkPalette = ColorPalette{}

	normalizeConfig(cfg)

	assert.Equal(t, "https://example.com/?q=", cfg.SearchEngine)
	assert.Equal(t, "https://suggest.example.com", cfg.Suggestions.Host)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "Orbit", cfg.Appearance.TabName)
	assert.Equal(t, DefaultDarkPalette(), cfg.Appearance.DarkPalette)
}

func TestSettingsStore(t *testing.T) {
	isolateXDG(t)
	ctx := context.Background()
	mgr := loadManager(t)
	store := NewSettingsStore(mgr)

	require.NoError(t, store.ApplySettings(ctx, entity.Settings{UserName: "vega", TabName: "Home"}))
	assert.Equal(t, entity.Settings{
		SearchEngine: defaultSearchEngine,
		UserName:     "vega",
		TabName:      "Home",
	}, store.Settings())

	dbPath := mgr.Get().Database.Path
	require.NoError(t, store.ResetToDefaults(ctx))
	assert.Equal(t, "axis", store.Settings().UserName)
	assert.Equal(t, dbPath, mgr.Get().Database.Path)
}

func TestSettingsStore_ApplyInvalid(t *testing.T) {
	isolateXDG(t)
	store := NewSettingsStore(loadManager(t))

	err := store.ApplySettings(context.Background(), entity.Settings{SearchEngine: "ftp://nope"})
	require.Error(t, err)
	assert.Equal(t, defaultSearchEngine, store.Settings().SearchEngine)
}

func TestExpandHome(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "bookmarks.yaml"), expandHome("~/bookmarks.yaml"))
	assert.Equal(t, "/var/lib/orbit.sqlite", expandHome("/var/lib/orbit.sqlite"))
	assert.Equal(t, "", expandHome(""))
	assert.Equal(t, "~other/file", expandHome("~other/file"))
}
