package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/orbit/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	logger := logging.NewWithWriter(cfg, &buf)

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "suggest")
	ctx = logging.WithEpoch(ctx, 7)

	logging.FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"suggest"`)
	assert.Contains(t, out, `"epoch":7`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestFromContext_NoLoggerIsDisabled(t *testing.T) {
	log := logging.FromContext(context.Background())
	require.NotNil(t, log)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestNewWithFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := logging.DefaultConfig()
	cfg.Format = "json"

	logger, cleanup, err := logging.NewWithFile(cfg, logging.FileConfig{Enabled: true, LogDir: dir})
	require.NoError(t, err)

	logger.Info().Msg("written")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "orbit.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}

func TestNewWithFile_DisabledDiscards(t *testing.T) {
	logger, cleanup, err := logging.NewWithFile(logging.DefaultConfig(), logging.FileConfig{})
	require.NoError(t, err)
	defer cleanup()

	logger.Info().Msg("nowhere")
}
