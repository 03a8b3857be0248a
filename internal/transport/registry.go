package transport

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Delivery is the outcome of one callback.
type Delivery struct {
	Payload json.RawMessage
	Err     error
}

// Registry tracks pending JSONP callbacks by id.
//
// Each id settles at most once: Call, Fail and Expire all remove the entry,
// and any later call for the same id is ignored.
type Registry struct {
	mu      sync.Mutex
	pending map[string]chan Delivery
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{pending: make(map[string]chan Delivery)}
}

// DefaultRegistry is shared by script transports that do not set their own.
var DefaultRegistry = NewRegistry()

// Register creates a pending entry for id and returns the channel its
// delivery will arrive on.
func (r *Registry) Register(id string) <-chan Delivery {
	ch := make(chan Delivery, 1)
	r.mu.Lock()
	r.pending[id] = ch
	r.mu.Unlock()
	return ch
}

func (r *Registry) settle(id string, d Delivery) bool {
	r.mu.Lock()
	ch, ok := r.pending[id]
	delete(r.pending, id)
	r.mu.Unlock()

	if !ok {
		slog.Debug("Ignoring callback for settled id", "callback", id)
		return false
	}
	ch <- d
	return true
}

// Call resolves id with payload. It reports whether id was still pending.
func (r *Registry) Call(id string, payload json.RawMessage) bool {
	return r.settle(id, Delivery{Payload: payload})
}

// Fail settles id with an error, used when the script itself failed to load.
func (r *Registry) Fail(id string, err error) bool {
	return r.settle(id, Delivery{Err: err})
}

// Expire drops id without delivering anything.
func (r *Registry) Expire(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[id]
	delete(r.pending, id)
	return ok
}

// Pending returns the number of unsettled callbacks.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
