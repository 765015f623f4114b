package url

import (
	"fmt"
	"net/url"
	"strings"
)

// componentUnescaper restores the characters url.QueryEscape escapes but a
// URI component keeps literal, and encodes spaces as %20 instead of '+'.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use as a single URI component.
// Everything outside A-Z a-z 0-9 - _ . ! ~ * ' ( ) is escaped.
//
//	"quantum gravity" → "quantum%20gravity"
//	"c++ & go"        → "c%2B%2B%20%26%20go"
func EncodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// BuildSearchURL appends the encoded query to the search engine prefix.
// The engine is a plain prefix such as "https://www.google.com/search?q=",
// not a template.
func BuildSearchURL(searchEngine, query string) string {
	return searchEngine + EncodeComponent(query)
}

// ValidateSearchEngine checks that the engine prefix is an absolute http(s) URL.
func ValidateSearchEngine(searchEngine string) error {
	if strings.TrimSpace(searchEngine) == "" {
		return fmt.Errorf("search engine cannot be empty")
	}
	parsed, err := url.Parse(searchEngine)
	if err != nil {
		return fmt.Errorf("invalid search engine url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("search engine must use http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("search engine url has no host")
	}
	return nil
}
