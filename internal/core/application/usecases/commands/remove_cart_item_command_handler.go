package commands

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// RemoveCartItemCommandHandler drops a line from the caller's cart.
type RemoveCartItemCommandHandler struct {
	policy    *services.AccessPolicy
	cartStore ports.CartStore
}

// NewRemoveCartItemCommandHandler creates a handler for cart removals.
func NewRemoveCartItemCommandHandler(
	policy *services.AccessPolicy,
	cartStore ports.CartStore,
) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		policy:    policy,
		cartStore: cartStore,
	}
}

// Handle removes the line and persists the snapshot. Returns the updated
// cart.
func (h *RemoveCartItemCommandHandler) Handle(
	ctx context.Context, a actor.Actor, cmd RemoveCartItemCommand,
) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.AuthorizeCartAccess(a); err != nil {
		return nil, err
	}

	c, err := h.cartStore.Load(ctx, a.ID())
	if err != nil {
		return nil, err
	}

	c.RemoveItem(cmd.FoodID())

	if err = h.cartStore.Save(ctx, a.ID(), c); err != nil {
		return nil, err
	}

	return c, nil
}
