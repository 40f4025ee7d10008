// Package inflight tracks state-mutating operations that are currently being
// sent to the remote storefront API. A mutation for a given resource must not
// be issued twice concurrently from the same client; the guard rejects the
// second attempt while the first is still unresolved.
package inflight

import (
	"errors"
	"sync"
)

// ErrOperationInFlight is returned by Acquire when a mutation for the same
// resource has been issued and has not yet resolved.
var ErrOperationInFlight = errors.New("operation already in flight for this resource")

// Guard is a per-resource mutual exclusion registry. Keys are resource
// identifiers (typically order ids). The guard does not block; a busy key
// fails fast so the caller can keep its control disabled.
type Guard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewGuard creates an empty in-flight guard.
func NewGuard() *Guard {
	return &Guard{active: make(map[string]struct{})}
}

// Acquire marks the key as busy. Returns ErrOperationInFlight when the key is
// already held.
func (g *Guard) Acquire(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return ErrOperationInFlight
	}

	g.active[key] = struct{}{}
	return nil
}

// Release frees the key. Releasing a key that is not held is a no-op.
func (g *Guard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.active, key)
}
