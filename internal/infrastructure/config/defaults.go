package config

// Default configuration constants
const (
	defaultSearchEngine = "https://www.google.com/search?q="

	// Suggestions defaults
	defaultSuggestHost       = "https://suggestqueries.google.com"
	defaultRequestTimeoutMs  = 5000
	defaultFallbackTimeoutMs = 3000
	defaultMaxResults        = 6

	// Appearance defaults
	defaultUserName = "axis"
	defaultTabName  = "Orbit"

	// defaultQuoteInterval is in minutes.
	defaultQuoteInterval = 30
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for orbit.
func DefaultConfig() *Config {
	return &Config{
		SearchEngine: defaultSearchEngine,
		Suggestions: SuggestionsConfig{
			Enabled:           true,
			Host:              defaultSuggestHost,
			RequestTimeoutMs:  defaultRequestTimeoutMs,
			FallbackTimeoutMs: defaultFallbackTimeoutMs,
			MaxResults:        defaultMaxResults,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
		},
		Database: DatabaseConfig{
			// Path is set dynamically in Load()
		},
		Appearance: AppearanceConfig{
			UserName:      defaultUserName,
			TabName:       defaultTabName,
			QuoteInterval: defaultQuoteInterval,
			DarkPalette:   DefaultDarkPalette(),
		},
	}
}

// DefaultDarkPalette returns the builtin dark theme.
func DefaultDarkPalette() ColorPalette {
	return ColorPalette{
		Background: "#0a0e1a",
		Surface:    "#141a2b",
		Text:       "#e0e0e0",
		Muted:      "#8a93a6",
		Accent:     "#4a9eff",
		Border:     "#2a3350",
	}
}
