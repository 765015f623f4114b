package port

import (
	"context"

	"github.com/bnema/orbit/internal/domain/entity"
)

// SettingsStore reads and writes the exportable settings and can restore defaults.
type SettingsStore interface {
	Settings() entity.Settings
	ApplySettings(ctx context.Context, s entity.Settings) error
	ResetToDefaults(ctx context.Context) error
}
