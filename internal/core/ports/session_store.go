package ports

import (
	"context"
	"time"
)

// SessionStore persists raw credentials under opaque session keys, the
// moral equivalent of the browser keeping its token between visits. A
// client exchanges its bearer token for a session key once and can resume
// with the key alone afterwards.
type SessionStore interface {
	// Create stores the credential and returns a fresh session key.
	Create(ctx context.Context, credential string) (string, error)

	// Get returns the credential stored under the key. A missing session
	// yields errs.ErrObjectNotFound.
	Get(ctx context.Context, sessionKey string) (string, error)

	// Delete removes the session. Deleting an absent session is a no-op.
	Delete(ctx context.Context, sessionKey string) error

	// PruneStale deletes sessions not touched within olderThan and returns
	// how many were removed.
	PruneStale(ctx context.Context, olderThan time.Duration) (int64, error)
}
