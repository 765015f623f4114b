// Package usecase contains application business logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/logging"
)

// CopyTextUseCase copies text to the system clipboard.
type CopyTextUseCase struct {
	clipboard port.Clipboard
}

// NewCopyTextUseCase creates a new CopyTextUseCase.
func NewCopyTextUseCase(clipboard port.Clipboard) *CopyTextUseCase {
	return &CopyTextUseCase{
		clipboard: clipboard,
	}
}

// Copy copies text to the clipboard.
// The caller decides how to report a failure.
func (uc *CopyTextUseCase) Copy(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if text == "" {
		log.Debug().Msg("copy: empty text")
		return fmt.Errorf("empty text")
	}

	if uc.clipboard == nil {
		log.Warn().Msg("copy: clipboard is nil")
		return fmt.Errorf("clipboard not available")
	}

	if err := uc.clipboard.WriteText(ctx, text); err != nil {
		log.Error().Err(err).Msg("copy: clipboard write failed")
		return fmt.Errorf("clipboard write failed: %w", err)
	}

	log.Debug().Str("text", text).Msg("copied to clipboard")
	return nil
}
