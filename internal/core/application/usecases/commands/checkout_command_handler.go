package commands

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// CheckoutCommandHandler turns the caller's cart into a placed order.
//
// The flow is deliberately pessimistic: nothing local changes until the
// remote API confirms the order. If the create call fails, the cart snapshot
// is untouched and the customer can retry; the idempotency key minted here
// keeps a retried request from producing a second order.
type CheckoutCommandHandler struct {
	policy    *services.AccessPolicy
	orders    ports.OrderGateway
	cartStore ports.CartStore
}

// NewCheckoutCommandHandler creates a handler for checkout.
func NewCheckoutCommandHandler(
	policy *services.AccessPolicy,
	orders ports.OrderGateway,
	cartStore ports.CartStore,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		policy:    policy,
		orders:    orders,
		cartStore: cartStore,
	}
}

// Handle validates the cart is not empty, places the order for the cart's
// total plus the delivery fee, and clears the cart once the server confirms.
// Returns the order as the server persisted it.
func (h *CheckoutCommandHandler) Handle(
	ctx context.Context, a actor.Actor, cmd CheckoutCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.AuthorizeCheckout(a); err != nil {
		return nil, err
	}

	c, err := h.cartStore.Load(ctx, a.ID())
	if err != nil {
		return nil, err
	}

	if c.IsEmpty() {
		return nil, cart.ErrEmptyCart
	}

	items, err := orderItemsFromCart(c)
	if err != nil {
		return nil, err
	}

	placed, err := h.orders.Create(ctx, ports.CreateOrderRequest{
		Items:          items,
		Address:        cmd.Address(),
		Payment:        cmd.Payment(),
		TotalPrice:     c.Total() + order.DeliveryFee,
		IdempotencyKey: kernel.NewID().String(),
	})
	if err != nil {
		return nil, err
	}

	// The order exists server-side now. A failed snapshot delete must not
	// turn a successful checkout into an error; the janitor prunes stale
	// snapshots anyway.
	_ = h.cartStore.Clear(ctx, a.ID())

	return placed, nil
}

func orderItemsFromCart(c *cart.Cart) ([]order.Item, error) {
	lines := c.Lines()
	items := make([]order.Item, 0, len(lines))

	for _, line := range lines {
		item, err := order.NewItem(line.FoodID(), line.Name(), line.Quantity(), line.UnitPrice(), line.Image())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
