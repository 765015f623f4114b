package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/logging"
)

// ResetDataUseCase restores default settings and bookmarks.
type ResetDataUseCase struct {
	bookmarks *ManageBookmarksUseCase
	settings  port.SettingsStore
}

// NewResetDataUseCase creates a new ResetDataUseCase.
func NewResetDataUseCase(bookmarks *ManageBookmarksUseCase, settings port.SettingsStore) *ResetDataUseCase {
	return &ResetDataUseCase{bookmarks: bookmarks, settings: settings}
}

// Execute resets everything when confirmed is true. An unconfirmed call
// returns ErrResetNotConfirmed and changes nothing.
func (uc *ResetDataUseCase) Execute(ctx context.Context, confirmed bool) error {
	log := logging.FromContext(ctx)

	if !confirmed {
		log.Debug().Msg("reset declined")
		return ErrResetNotConfirmed
	}

	if err := uc.bookmarks.RestoreDefaults(ctx); err != nil {
		return fmt.Errorf("failed to reset bookmarks: %w", err)
	}

	if uc.settings != nil {
		if err := uc.settings.ResetToDefaults(ctx); err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
	}

	log.Info().Msg("settings and bookmarks reset to defaults")
	return nil
}
