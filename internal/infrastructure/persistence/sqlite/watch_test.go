package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDatabaseFile(t *testing.T) {
	assert.True(t, isDatabaseFile("orbit.sqlite", "orbit.sqlite"))
	assert.True(t, isDatabaseFile("orbit.sqlite-wal", "orbit.sqlite"))
	assert.True(t, isDatabaseFile("orbit.sqlite-journal", "orbit.sqlite"))
	assert.False(t, isDatabaseFile("orbit.sqlite-shm", "orbit.sqlite"))
	assert.False(t, isDatabaseFile("config.toml", "orbit.sqlite"))
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	var calls atomic.Int32
	d := newDebouncer(20*time.Millisecond, func() { calls.Add(1) })

	for i := 0; i < 10; i++ {
		d.trigger()
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	var calls atomic.Int32
	d := newDebouncer(20*time.Millisecond, func() { calls.Add(1) })

	d.trigger()
	d.stop()
	d.trigger()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWatchDatabase(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	dbPath := filepath.Join(t.TempDir(), "orbit.sqlite")

	changes, err := WatchDatabase(ctx, dbPath)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(dbPath), "unrelated.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(dbPath+"-wal", []byte("x"), 0o644))

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change notification")
	}

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
