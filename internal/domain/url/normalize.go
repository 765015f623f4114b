// Package url provides URL detection and normalization for omnibox input.
package url

import (
	"net/url"
	"regexp"
	"strings"
)

// destinationPattern matches bare hosts the user most likely wants to visit:
// localhost, a dotted-quad IPv4 address, or label(.label)+ ending in a TLD of
// at least two letters. Each may carry a port and a path.
var destinationPattern = regexp.MustCompile(
	`^(localhost|(\d{1,3}\.){3}\d{1,3}|([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,})(:\d+)?(/.*)?$`,
)

// HasScheme reports whether input starts with http:// or https://.
func HasScheme(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// LooksLikeURL checks if the input appears to be a destination rather than a search query.
// Returns true for "github.com", "localhost:8080/api", "192.168.1.1" and explicit http(s) URLs.
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if HasScheme(input) {
		return true
	}
	return destinationPattern.MatchString(input)
}

// Normalize adds https:// prefix if the input has no http(s) scheme.
func Normalize(input string) string {
	if input == "" {
		return ""
	}
	if HasScheme(input) {
		return input
	}
	return "https://" + input
}

// ExtractDomain extracts the host from a URL string, stripping "www.".
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(Normalize(rawURL))
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
