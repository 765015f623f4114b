package config

import "time"

// Config represents the complete configuration for orbit.
type Config struct {
	// SearchEngine is the URL prefix the encoded query is appended to.
	SearchEngine string            `mapstructure:"search_engine" toml:"search_engine" json:"search_engine" jsonschema:"format=uri"`
	Suggestions  SuggestionsConfig `mapstructure:"suggestions" toml:"suggestions" json:"suggestions"`
	Logging      LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
	Database     DatabaseConfig    `mapstructure:"database" toml:"database" json:"database"`
	Appearance   AppearanceConfig  `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Bookmarks    BookmarksConfig   `mapstructure:"bookmarks" toml:"bookmarks" json:"bookmarks"`
}

// SuggestionsConfig controls remote search completions.
type SuggestionsConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// Host serves /complete/search.
	Host              string `mapstructure:"host" toml:"host" json:"host" jsonschema:"format=uri"`
	RequestTimeoutMs  int    `mapstructure:"request_timeout_ms" toml:"request_timeout_ms" json:"request_timeout_ms" jsonschema:"minimum=1"`
	FallbackTimeoutMs int    `mapstructure:"fallback_timeout_ms" toml:"fallback_timeout_ms" json:"fallback_timeout_ms" jsonschema:"minimum=1"`
	MaxResults        int    `mapstructure:"max_results" toml:"max_results" json:"max_results" jsonschema:"minimum=1,maximum=6"`
}

// RequestTimeout returns the primary request timeout.
func (s SuggestionsConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutMs) * time.Millisecond
}

// FallbackTimeout returns the callback fallback timeout.
func (s SuggestionsConfig) FallbackTimeout() time.Duration {
	return time.Duration(s.FallbackTimeoutMs) * time.Millisecond
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// LogDir receives orbit.log while the TUI runs.
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
}

// DatabaseConfig holds the bookmark store location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// AppearanceConfig holds the start page look.
type AppearanceConfig struct {
	UserName string `mapstructure:"user_name" toml:"user_name" json:"user_name"`
	TabName  string `mapstructure:"tab_name" toml:"tab_name" json:"tab_name"`
	// Greeting replaces the time-of-day greeting when set.
	Greeting string `mapstructure:"greeting" toml:"greeting" json:"greeting"`
	// QuoteFile is inline text, a data: URL or a file path, one quote per line.
	// Empty uses the builtin quotes.
	QuoteFile string `mapstructure:"quote_file" toml:"quote_file" json:"quote_file"`
	// QuoteInterval is the rotation period in minutes. 0 hides the quote.
	QuoteInterval int          `mapstructure:"quote_interval" toml:"quote_interval" json:"quote_interval" jsonschema:"minimum=0"`
	DarkPalette   ColorPalette `mapstructure:"dark_palette" toml:"dark_palette" json:"dark_palette"`
}

// ColorPalette holds hex colors for the TUI theme.
type ColorPalette struct {
	Background string `mapstructure:"background" toml:"background" json:"background"`
	Surface    string `mapstructure:"surface" toml:"surface" json:"surface"`
	Text       string `mapstructure:"text" toml:"text" json:"text"`
	Muted      string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent     string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border     string `mapstructure:"border" toml:"border" json:"border"`
}

// BookmarksConfig holds bookmark file locations.
type BookmarksConfig struct {
	// SeedFile is an optional export document used on first start instead of the builtin list.
	SeedFile string `mapstructure:"seed_file" toml:"seed_file" json:"seed_file"`
	// ExportFile is where :export writes and :import reads. Empty means the data dir.
	ExportFile string `mapstructure:"export_file" toml:"export_file" json:"export_file"`
}
