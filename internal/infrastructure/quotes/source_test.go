package quotes

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "quotes.txt")
	require.NoError(t, os.WriteFile(file, []byte("from file\n\nsecond line\n"), 0o600))

	encoded := base64.StdEncoding.EncodeToString([]byte("b64 one\nb64 two"))

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{name: "empty", source: "  ", want: nil},
		{name: "inline", source: "one\n  two  \n", want: []string{"one", "two"}},
		{name: "single inline line", source: "stay curious", want: []string{"stay curious"}},
		{name: "plain data url", source: "data:text/plain,first%0Asecond", want: []string{"first", "second"}},
		{name: "base64 data url", source: "data:text/plain;base64," + encoded, want: []string{"b64 one", "b64 two"}},
		{name: "file", source: file, want: []string{"from file", "second line"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(context.Background(), tt.source)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	blank := filepath.Join(dir, "blank.txt")
	require.NoError(t, os.WriteFile(blank, []byte("\n \n"), 0o600))

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(dir, "nope.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("blank file", func(t *testing.T) {
		_, err := Load(context.Background(), blank)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("data url without comma", func(t *testing.T) {
		_, err := Load(context.Background(), "data:text/plain")
		assert.ErrorContains(t, err, "missing comma")
	})

	t.Run("bad base64", func(t *testing.T) {
		_, err := Load(context.Background(), "data:;base64,***")
		assert.Error(t, err)
	})
}
