package commands

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// ClearCartCommandHandler empties the caller's cart. Carries no command
// payload; the actor identifies the cart.
type ClearCartCommandHandler struct {
	policy    *services.AccessPolicy
	cartStore ports.CartStore
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(
	policy *services.AccessPolicy,
	cartStore ports.CartStore,
) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		policy:    policy,
		cartStore: cartStore,
	}
}

// Handle removes the caller's cart snapshot.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, a actor.Actor) error {
	if err := h.policy.AuthorizeCartAccess(a); err != nil {
		return err
	}

	return h.cartStore.Clear(ctx, a.ID())
}
