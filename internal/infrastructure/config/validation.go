package config

import (
	"fmt"
	"strings"

	"github.com/bnema/orbit/internal/domain/query"
	domainvalidation "github.com/bnema/orbit/internal/domain/validation"
)

// The result set never holds more suggestions than this.
const maxSuggestionResults = query.MaxSuggestions

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSearchEngine(config)...)
	validationErrors = append(validationErrors, validateSuggestions(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateDatabase(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateSearchEngine(config *Config) []string {
	return domainvalidation.ValidateHTTPURL("search_engine", config.SearchEngine)
}

func validateSuggestions(config *Config) []string {
	var validationErrors []string
	s := config.Suggestions

	// A disabled transport never dials, so its host may be anything.
	if s.Enabled {
		validationErrors = append(validationErrors, domainvalidation.ValidateHTTPURL("suggestions.host", s.Host)...)
	}
	if s.RequestTimeoutMs <= 0 {
		validationErrors = append(validationErrors, "suggestions.request_timeout_ms must be positive")
	}
	if s.FallbackTimeoutMs <= 0 {
		validationErrors = append(validationErrors, "suggestions.fallback_timeout_ms must be positive")
	}
	if s.MaxResults < 1 || s.MaxResults > maxSuggestionResults {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"suggestions.max_results must be between 1 and %d (got: %d)",
			maxSuggestionResults,
			s.MaxResults,
		))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	if strings.TrimSpace(config.Appearance.TabName) == "" {
		validationErrors = append(validationErrors, "appearance.tab_name cannot be empty")
	}
	if config.Appearance.QuoteInterval < 0 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"appearance.quote_interval must be 0 (hidden) or a number of minutes (got: %d)",
			config.Appearance.QuoteInterval,
		))
	}
	p := config.Appearance.DarkPalette
	validationErrors = append(validationErrors, domainvalidation.ValidatePaletteHex(
		"appearance.dark_palette",
		domainvalidation.PaletteColor{Field: "background", Value: p.Background},
		domainvalidation.PaletteColor{Field: "surface", Value: p.Surface},
		domainvalidation.PaletteColor{Field: "text", Value: p.Text},
		domainvalidation.PaletteColor{Field: "muted", Value: p.Muted},
		domainvalidation.PaletteColor{Field: "accent", Value: p.Accent},
		domainvalidation.PaletteColor{Field: "border", Value: p.Border},
	)...)
	return validationErrors
}

func validateDatabase(config *Config) []string {
	if strings.TrimSpace(config.Database.Path) == "" {
		return []string{"database.path cannot be empty"}
	}
	return nil
}
