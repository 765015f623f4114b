package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// ORBIT_SEARCH_ENGINE, ORBIT_SUGGESTIONS_ENABLED, ...
	v.SetEnvPrefix("ORBIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "ORBIT_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind ORBIT_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "ORBIT_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind ORBIT_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.decodeLocked()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decodeLocked unmarshals, fills, normalizes and validates the viper state.
// Must be called with m.mu held for write.
func (m *Manager) decodeLocked() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.SearchEngine = strings.TrimSpace(config.SearchEngine)
	config.Suggestions.Host = strings.TrimRight(strings.TrimSpace(config.Suggestions.Host), "/")

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))

	if config.Appearance.TabName == "" {
		config.Appearance.TabName = defaultTabName
	}
	if config.Appearance.DarkPalette == (ColorPalette{}) {
		config.Appearance.DarkPalette = DefaultDarkPalette()
	}

	config.Bookmarks.SeedFile = expandHome(config.Bookmarks.SeedFile)
	config.Bookmarks.ExportFile = expandHome(config.Bookmarks.ExportFile)
	config.Database.Path = expandHome(config.Database.Path)
	config.Logging.LogDir = expandHome(config.Logging.LogDir)
}

func expandHome(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.configFileLocked()
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfigOrdered(cfg, path); err != nil {
		return err
	}

	// The watcher would otherwise reload what we just wrote.
	if m.watching {
		m.skipNextReload = true
	}

	configCopy := *cfg
	m.config = &configCopy
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to re-read config after save: %w", err)
	}
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.configFileLocked()
}

func (m *Manager) configFileLocked() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, _ := GetConfigFile()
	return path
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	defaults := DefaultConfig()
	if err := WriteConfigOrdered(defaults, configFile); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)

	if err := GenerateSchemaFile(filepath.Dir(configFile)); err != nil {
		return err
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed
	m.viper.SetDefault("search_engine", defaults.SearchEngine)
	m.setSuggestionsDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setBookmarksDefaults(defaults)
}

func (m *Manager) setSuggestionsDefaults(defaults *Config) {
	m.viper.SetDefault("suggestions.enabled", defaults.Suggestions.Enabled)
	m.viper.SetDefault("suggestions.host", defaults.Suggestions.Host)
	m.viper.SetDefault("suggestions.request_timeout_ms", defaults.Suggestions.RequestTimeoutMs)
	m.viper.SetDefault("suggestions.fallback_timeout_ms", defaults.Suggestions.FallbackTimeoutMs)
	m.viper.SetDefault("suggestions.max_results", defaults.Suggestions.MaxResults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.user_name", defaults.Appearance.UserName)
	m.viper.SetDefault("appearance.tab_name", defaults.Appearance.TabName)
	m.viper.SetDefault("appearance.greeting", defaults.Appearance.Greeting)
	m.viper.SetDefault("appearance.quote_file", defaults.Appearance.QuoteFile)
	m.viper.SetDefault("appearance.quote_interval", defaults.Appearance.QuoteInterval)
	m.viper.SetDefault("appearance.dark_palette.background", defaults.Appearance.DarkPalette.Background)
	m.viper.SetDefault("appearance.dark_palette.surface", defaults.Appearance.DarkPalette.Surface)
	m.viper.SetDefault("appearance.dark_palette.text", defaults.Appearance.DarkPalette.Text)
	m.viper.SetDefault("appearance.dark_palette.muted", defaults.Appearance.DarkPalette.Muted)
	m.viper.SetDefault("appearance.dark_palette.accent", defaults.Appearance.DarkPalette.Accent)
	m.viper.SetDefault("appearance.dark_palette.border", defaults.Appearance.DarkPalette.Border)
}

func (m *Manager) setBookmarksDefaults(defaults *Config) {
	m.viper.SetDefault("bookmarks.seed_file", defaults.Bookmarks.SeedFile)
	m.viper.SetDefault("bookmarks.export_file", defaults.Bookmarks.ExportFile)
}
