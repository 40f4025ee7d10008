package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartStore persists cart snapshots locally, keyed by the owning customer.
// The cart never round-trips through the remote API.
type CartStore interface {
	// Load returns the owner's cart. A missing or unreadable snapshot yields
	// an empty cart, never an error: the cart is a convenience, losing it
	// must not block the storefront.
	Load(ctx context.Context, owner kernel.ID) (*cart.Cart, error)

	// Save writes the owner's cart snapshot, replacing any previous one.
	Save(ctx context.Context, owner kernel.ID, c *cart.Cart) error

	// Clear removes the owner's cart snapshot.
	Clear(ctx context.Context, owner kernel.ID) error

	// PruneStale deletes snapshots not touched within olderThan and returns
	// how many were removed.
	PruneStale(ctx context.Context, olderThan time.Duration) (int64, error)
}
