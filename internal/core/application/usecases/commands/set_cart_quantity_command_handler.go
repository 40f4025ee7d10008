package commands

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// SetCartQuantityCommandHandler sets an absolute line quantity on the
// caller's cart.
type SetCartQuantityCommandHandler struct {
	policy    *services.AccessPolicy
	cartStore ports.CartStore
}

// NewSetCartQuantityCommandHandler creates a handler for quantity updates.
func NewSetCartQuantityCommandHandler(
	policy *services.AccessPolicy,
	cartStore ports.CartStore,
) SetCartQuantityCommandHandler {
	return SetCartQuantityCommandHandler{
		policy:    policy,
		cartStore: cartStore,
	}
}

// Handle applies the quantity and persists the snapshot. Returns the updated
// cart.
func (h *SetCartQuantityCommandHandler) Handle(
	ctx context.Context, a actor.Actor, cmd SetCartQuantityCommand,
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

	c.SetQuantity(cmd.FoodID(), cmd.Quantity())

	if err = h.cartStore.Save(ctx, a.ID(), c); err != nil {
		return nil, err
	}

	return c, nil
}
