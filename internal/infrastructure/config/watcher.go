package config

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/orbit/internal/logging"
)

// Watch reloads config.toml whenever it changes on disk, whether through
// :config, another orbit instance or a plain editor. Callbacks registered
// with OnConfigChange run on the watcher goroutine. A file that fails to
// parse or validate is logged and the last good config stays active.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	log := logging.FromContext(logging.WithComponent(ctx, "config"))
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()
		if m.skipNextReload {
			// Save already decoded what it wrote.
			m.skipNextReload = false
			m.notifyCallbacksLocked()
			return
		}

		if err := m.reload(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("config reload failed, keeping previous config")
			return
		}
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// notifyCallbacksLocked must be called with m.mu held for write. It
// releases the lock before running the callbacks, each of which gets its
// own copy of the config.
func (m *Manager) notifyCallbacksLocked() {
	if m.config == nil {
		m.mu.Unlock()
		return
	}
	current := *m.config
	callbacks := append(([]func(*Config))(nil), m.callbacks...)
	m.mu.Unlock()

	for _, callback := range callbacks {
		cfg := current
		callback(&cfg)
	}
}

// OnConfigChange registers a callback for reloaded configs.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file. Must be called with m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	return m.decodeLocked()
}
