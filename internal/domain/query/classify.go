// Package query holds the pure parts of omnibox resolution: classifying
// input, matching it against local data and the result set it produces.
package query

import (
	"strings"

	"github.com/bnema/orbit/internal/domain/entity"
)

// Mode is the interaction mode derived from raw input text.
type Mode int

const (
	// ModeEmpty is blank or whitespace-only input.
	ModeEmpty Mode = iota
	// ModeCommand is input starting with the command prefix.
	ModeCommand
	// ModePlain is everything else.
	ModePlain
)

func (m Mode) String() string {
	switch m {
	case ModeEmpty:
		return "empty"
	case ModeCommand:
		return "command"
	case ModePlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Classify maps raw input to a Mode.
func Classify(text string) Mode {
	if strings.TrimSpace(text) == "" {
		return ModeEmpty
	}
	if strings.HasPrefix(text, entity.CommandPrefix) {
		return ModeCommand
	}
	return ModePlain
}

// Fold is the canonical comparison form of input: trimmed and lower-cased.
func Fold(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
