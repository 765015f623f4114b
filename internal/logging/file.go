package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	logDirPerm  = 0o750
	logFilePerm = 0o640
	logFileName = "orbit.log"
)

// FileConfig controls where file logs go.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	WriteToStderr bool
}

// NewWithFile creates a logger that appends to LogDir/orbit.log.
// The returned cleanup closes the file. With file logging disabled and no
// stderr the logger discards everything.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	var writers []io.Writer
	if fileCfg.WriteToStderr {
		writers = append(writers, os.Stderr)
	}

	var file *os.File
	if fileCfg.Enabled && fileCfg.LogDir != "" {
		if err := os.MkdirAll(fileCfg.LogDir, logDirPerm); err != nil {
			return NewWithWriter(cfg, io.Discard), noop, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(fileCfg.LogDir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
		if err != nil {
			return NewWithWriter(cfg, io.Discard), noop, fmt.Errorf("open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	var sink io.Writer
	switch len(writers) {
	case 0:
		sink = io.Discard
	case 1:
		sink = writers[0]
	default:
		sink = io.MultiWriter(writers...)
	}

	cleanup := noop
	if file != nil {
		cleanup = func() { _ = file.Close() }
	}
	return NewWithWriter(cfg, sink), cleanup, nil
}
