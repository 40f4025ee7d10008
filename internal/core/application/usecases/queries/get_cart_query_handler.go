// Package queries contains read operations. Queries never mutate anything:
// they load local snapshots or fetch from the remote API and shape the
// result for presentation.
package queries

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// GetCartQueryHandler returns the caller's cart. A missing or unreadable
// snapshot comes back as an empty cart.
type GetCartQueryHandler struct {
	policy    *services.AccessPolicy
	cartStore ports.CartStore
}

// NewGetCartQueryHandler creates a handler for cart reads.
func NewGetCartQueryHandler(
	policy *services.AccessPolicy,
	cartStore ports.CartStore,
) GetCartQueryHandler {
	return GetCartQueryHandler{
		policy:    policy,
		cartStore: cartStore,
	}
}

// Handle loads the caller's cart snapshot.
func (h GetCartQueryHandler) Handle(ctx context.Context, a actor.Actor) (*cart.Cart, error) {
	if err := h.policy.AuthorizeCartAccess(a); err != nil {
		return nil, err
	}

	return h.cartStore.Load(ctx, a.ID())
}
