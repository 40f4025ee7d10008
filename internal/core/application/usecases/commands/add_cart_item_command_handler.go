package commands

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// AddCartItemCommandHandler adds a catalog item to the caller's cart.
// The catalog is consulted on every add so the frozen line price reflects
// the menu at that moment; an item already in the cart keeps its original
// price and only gains quantity.
type AddCartItemCommandHandler struct {
	policy    *services.AccessPolicy
	catalog   ports.CatalogGateway
	cartStore ports.CartStore
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(
	policy *services.AccessPolicy,
	catalog ports.CatalogGateway,
	cartStore ports.CartStore,
) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		policy:    policy,
		catalog:   catalog,
		cartStore: cartStore,
	}
}

// Handle loads the cart, merges the new line, and persists the snapshot.
// Returns the updated cart.
func (h *AddCartItemCommandHandler) Handle(
	ctx context.Context, a actor.Actor, cmd AddCartItemCommand,
) (*cart.Cart, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.AuthorizeCartAccess(a); err != nil {
		return nil, err
	}

	f, err := h.catalog.GetFood(ctx, cmd.FoodID())
	if err != nil {
		return nil, err
	}

	c, err := h.cartStore.Load(ctx, a.ID())
	if err != nil {
		return nil, err
	}

	if err = c.AddItem(f, cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = h.cartStore.Save(ctx, a.ID(), c); err != nil {
		return nil, err
	}

	return c, nil
}
