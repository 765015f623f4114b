// Package clipboard provides a clipboard adapter backed by atotto/clipboard,
// which drives wl-clipboard, xclip or xsel on Linux.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/logging"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool available (install wl-clipboard or xclip)")

// Adapter implements port.Clipboard.
type Adapter struct {
	unsupported bool
	write       func(string) error
	read        func() (string, error)
}

// New creates a new clipboard adapter.
func New() *Adapter {
	return &Adapter{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
		read:        clipboard.ReadAll,
	}
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if a.unsupported {
		log.Warn().Err(ErrUnavailable).Msg("clipboard write failed")
		return ErrUnavailable
	}
	if err := a.write(text); err != nil {
		log.Warn().Err(err).Msg("clipboard write failed")
		return fmt.Errorf("clipboard write: %w", err)
	}

	log.Debug().Int("len", len(text)).Msg("clipboard write success")
	return nil
}

// ReadText reads text from the clipboard.
func (a *Adapter) ReadText(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	if a.unsupported {
		return "", ErrUnavailable
	}
	text, err := a.read()
	if err != nil {
		// Empty clipboards make some tools exit non-zero.
		log.Debug().Err(err).Msg("clipboard read failed")
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	return text, nil
}

var _ port.Clipboard = (*Adapter)(nil)
