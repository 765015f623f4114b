package port

// XDGPaths resolves orbit's own directories under the XDG base dirs,
// e.g. $XDG_CONFIG_HOME/orbit.
type XDGPaths interface {
	// ConfigDir holds config.toml and its schema.
	ConfigDir() (string, error)
	// DataDir holds the bookmark database and the default export file.
	DataDir() (string, error)
	// StateDir holds the log directory.
	StateDir() (string, error)
}
