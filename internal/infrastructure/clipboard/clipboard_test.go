package clipboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAdapter(store *string, writeErr error) *Adapter {
	return &Adapter{
		write: func(s string) error {
			if writeErr != nil {
				return writeErr
			}
			*store = s
			return nil
		},
		read: func() (string, error) { return *store, nil },
	}
}

func TestAdapter_RoundTrip(t *testing.T) {
	var store string
	a := fakeAdapter(&store, nil)

	require.NoError(t, a.WriteText(context.Background(), "/data/orbit-export.json"))
	text, err := a.ReadText(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/data/orbit-export.json", text)
}

func TestAdapter_WriteError(t *testing.T) {
	var store string
	boom := errors.New("exit status 1")
	a := fakeAdapter(&store, boom)

	err := a.WriteText(context.Background(), "x")

	assert.ErrorIs(t, err, boom)
}

func TestAdapter_Unsupported(t *testing.T) {
	a := &Adapter{unsupported: true}

	assert.ErrorIs(t, a.WriteText(context.Background(), "x"), ErrUnavailable)
	_, err := a.ReadText(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
