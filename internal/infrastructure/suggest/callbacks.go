package suggest

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

const callbackPrefix = "orbit_cb_"

// callbackRegistry is the private name → pending call table for fallback
// requests. A body can only resolve a call whose name is still registered.
type callbackRegistry struct {
	mu      sync.Mutex
	pending map[string]chan []byte
}

func newCallbackRegistry() *callbackRegistry {
	return &callbackRegistry{pending: make(map[string]chan []byte)}
}

// register reserves a fresh callback name. The returned release func
// deregisters it and is safe to call more than once.
func (r *callbackRegistry) register() (name string, fired <-chan []byte, release func()) {
	name = callbackPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
	ch := make(chan []byte, 1)

	r.mu.Lock()
	r.pending[name] = ch
	r.mu.Unlock()

	release = func() {
		r.mu.Lock()
		delete(r.pending, name)
		r.mu.Unlock()
	}
	return name, ch, release
}

// invoke delivers payload to the call registered under name, at most once.
// Returns false if no such call is pending.
func (r *callbackRegistry) invoke(name string, payload []byte) bool {
	r.mu.Lock()
	ch, ok := r.pending[name]
	if ok {
		delete(r.pending, name)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	ch <- payload
	return true
}

func (r *callbackRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
