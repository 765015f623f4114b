package validation

import (
	"net/url"
	"strings"
)

// ValidateHTTPURL checks that value is an absolute http or https URL with a host.
func ValidateHTTPURL(field, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return []string{field + " cannot be empty"}
	}

	u, err := url.Parse(value)
	if err != nil {
		return []string{field + " is not a valid URL: " + err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return []string{field + " must use http or https"}
	}
	if u.Host == "" {
		return []string{field + " must include a host"}
	}
	return nil
}
