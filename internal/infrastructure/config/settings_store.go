package config

import (
	"context"
	"fmt"

	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/domain/entity"
	"github.com/bnema/orbit/internal/logging"
)

// SettingsStore exposes the exportable part of the config through the Manager.
type SettingsStore struct {
	manager *Manager
}

var _ port.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore creates a settings store backed by manager.
func NewSettingsStore(manager *Manager) *SettingsStore {
	return &SettingsStore{manager: manager}
}

// Settings returns the current exportable settings.
func (s *SettingsStore) Settings() entity.Settings {
	cfg := s.manager.Get()
	return entity.Settings{
		SearchEngine: cfg.SearchEngine,
		UserName:     cfg.Appearance.UserName,
		TabName:      cfg.Appearance.TabName,
	}
}

// ApplySettings overwrites the non-empty fields of settings and saves the file.
func (s *SettingsStore) ApplySettings(ctx context.Context, settings entity.Settings) error {
	cfg := s.manager.Get()
	if settings.SearchEngine != "" {
		cfg.SearchEngine = settings.SearchEngine
	}
	if settings.UserName != "" {
		cfg.Appearance.UserName = settings.UserName
	}
	if settings.TabName != "" {
		cfg.Appearance.TabName = settings.TabName
	}

	if err := s.manager.Save(cfg); err != nil {
		return fmt.Errorf("apply settings: %w", err)
	}
	logging.FromContext(ctx).Info().Str("search_engine", cfg.SearchEngine).Msg("settings applied")
	return nil
}

// ResetToDefaults restores every user-facing setting. The database location
// and logging setup are kept so a reset never orphans the bookmark store.
func (s *SettingsStore) ResetToDefaults(ctx context.Context) error {
	current := s.manager.Get()
	cfg := DefaultConfig()
	cfg.Database = current.Database
	cfg.Logging = current.Logging

	if err := s.manager.Save(cfg); err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("settings reset to defaults")
	return nil
}
