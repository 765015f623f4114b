// Package quotes loads the quote list configured as appearance.quote_file.
package quotes

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/bnema/orbit/internal/domain/quote"
	"github.com/bnema/orbit/internal/logging"
)

// ErrEmpty is returned when a configured source holds no quotes.
var ErrEmpty = errors.New("quote source holds no quotes")

// Load resolves source into a quote list. source is one of:
//   - empty, which yields nil so the builtin list applies
//   - a data: URL holding plain text, optionally base64 encoded
//   - a path starting with "/", "~", "./" or "../"
//   - inline text, one quote per line
func Load(ctx context.Context, source string) ([]string, error) {
	log := logging.FromContext(ctx)

	source = strings.TrimSpace(source)
	var (
		text string
		kind string
		err  error
	)
	switch {
	case source == "":
		return nil, nil
	case strings.HasPrefix(source, "data:"):
		kind = "data"
		text, err = decodeDataURL(source)
	case isPath(source):
		kind = "file"
		text, err = readFile(source)
	default:
		kind = "inline"
		text = source
	}
	if err != nil {
		return nil, err
	}

	quotes := quote.Parse(text)
	if len(quotes) == 0 {
		return nil, fmt.Errorf("%s source: %w", kind, ErrEmpty)
	}
	log.Debug().Str("kind", kind).Int("count", len(quotes)).Msg("quotes loaded")
	return quotes, nil
}

func isPath(source string) bool {
	if strings.Contains(source, "\n") {
		return false
	}
	for _, prefix := range []string{"/", "~", "./", "../"} {
		if strings.HasPrefix(source, prefix) {
			return true
		}
	}
	return false
}

func readFile(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand quote file path: %w", err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("read quote file: %w", err)
	}
	return string(data), nil
}

// decodeDataURL returns the payload of data:[<mediatype>][;base64],<data>.
func decodeDataURL(raw string) (string, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(raw, "data:"), ",")
	if !ok {
		return "", errors.New("quote data url: missing comma")
	}

	if strings.HasSuffix(strings.ToLower(meta), ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", fmt.Errorf("quote data url: %w", err)
		}
		return string(data), nil
	}

	text, err := url.PathUnescape(payload)
	if err != nil {
		return "", fmt.Errorf("quote data url: %w", err)
	}
	return text, nil
}
