package suggest

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/bnema/orbit/internal/domain/query"
)

// jsonpPattern matches `name(<payload>)` with optional leading block comments
// and a trailing semicolon, the shape the endpoint returns for &callback=.
var jsonpPattern = regexp.MustCompile(`(?s)^\s*(?:/\*.*?\*/\s*)*([A-Za-z_$][\w$]*)\s*\((.*)\)\s*;?\s*$`)

// parseSuggestions decodes `[query, [s1, s2, ...], ...]` and returns element 1.
func parseSuggestions(payload []byte) ([]string, error) {
	var envelope []json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", query.ErrMalformedResponse, err)
	}
	if len(envelope) < 2 {
		return nil, fmt.Errorf("%w: %d elements", query.ErrMalformedResponse, len(envelope))
	}

	var suggestions []string
	if err := json.Unmarshal(envelope[1], &suggestions); err != nil {
		return nil, fmt.Errorf("%w: element 1: %v", query.ErrMalformedResponse, err)
	}
	return suggestions, nil
}

// unwrapJSONP splits a callback-wrapped body into the callback name and its
// argument.
func unwrapJSONP(body []byte) (name string, payload []byte, err error) {
	m := jsonpPattern.FindSubmatch(body)
	if m == nil {
		return "", nil, fmt.Errorf("%w: not a callback invocation", query.ErrMalformedResponse)
	}
	return string(m[1]), m[2], nil
}
