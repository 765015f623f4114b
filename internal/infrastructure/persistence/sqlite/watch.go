package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/orbit/internal/logging"
)

// changeDebounce coalesces the burst of writes one transaction produces.
const changeDebounce = 150 * time.Millisecond

// WatchDatabase reports writes to the database file and its WAL made by any
// process, so other orbit instances can refresh their bookmark snapshot.
// Bursts are coalesced into one notification. The channel closes when ctx is
// done or the watcher fails.
func WatchDatabase(ctx context.Context, dbPath string) (<-chan struct{}, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("ensure database directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: sqlite recreates -wal and -journal files.
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	log := logging.FromContext(ctx)
	changes := make(chan struct{}, 1)
	base := filepath.Base(dbPath)

	go func() {
		defer close(changes)
		defer func() { _ = watcher.Close() }()

		notify := func() {
			select {
			case changes <- struct{}{}:
			default:
				// One pending notification is enough.
			}
		}
		debounce := newDebouncer(changeDebounce, notify)
		defer debounce.stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Debug().Err(err).Msg("database watcher error")
				debounce.trigger()
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !isDatabaseFile(filepath.Base(evt.Name), base) {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				debounce.trigger()
			}
		}
	}()

	return changes, nil
}

// isDatabaseFile matches the database and its -wal and -journal siblings.
// The -shm file is excluded: readers touch it too.
func isDatabaseFile(name, base string) bool {
	if name == base {
		return true
	}
	suffix, ok := strings.CutPrefix(name, base)
	return ok && (suffix == "-wal" || suffix == "-journal")
}

// debouncer calls fn once per burst of triggers. After stop returns fn is
// never called again.
type debouncer struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	delay   time.Duration
	fn      func()
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil && !d.stopped {
		d.timer = time.AfterFunc(d.delay, d.fire)
	}
}

func (d *debouncer) fire() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.timer = nil
	if !d.stopped {
		d.fn()
	}
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
