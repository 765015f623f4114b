// Package xdg exposes orbit's config, data and state directories to the
// application layer.
package xdg

import (
	"github.com/bnema/orbit/internal/application/port"
	"github.com/bnema/orbit/internal/infrastructure/config"
)

// Adapter resolves directories through the config package, so purge sees
// the same paths the loader uses.
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

// ConfigDir returns $XDG_CONFIG_HOME/orbit.
func (*Adapter) ConfigDir() (string, error) { return config.GetConfigDir() }

// DataDir returns $XDG_DATA_HOME/orbit.
func (*Adapter) DataDir() (string, error) { return config.GetDataDir() }

// StateDir returns $XDG_STATE_HOME/orbit.
func (*Adapter) StateDir() (string, error) { return config.GetStateDir() }

var _ port.XDGPaths = (*Adapter)(nil)
