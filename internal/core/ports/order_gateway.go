// Package ports defines the contracts between the application core and the
// outside world: the remote storefront API, the local snapshot store, and
// credential resolution. Adapters implement these; use cases depend on them.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// CreateOrderRequest carries everything the remote API needs to place an
// order. Items and totals are computed from the cart before the call; the
// idempotency key lets a retried request land on the same order.
type CreateOrderRequest struct {
	Items          []order.Item
	Address        order.ShippingAddress
	Payment        order.PaymentMethod
	TotalPrice     float64
	IdempotencyKey string
}

// OrderGateway is the remote API surface for orders. Every call requires the
// caller's credential in the context; the adapter forwards it as the bearer
// token. The server is the source of truth: mutations return the order as the
// server now sees it, and callers replace their local copy with that.
type OrderGateway interface {
	// Create places a new order and returns it as persisted by the server.
	Create(ctx context.Context, req CreateOrderRequest) (*order.Order, error)

	// Get retrieves a single order by id.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetMine retrieves the calling customer's orders, newest first.
	GetMine(ctx context.Context) ([]*order.Order, error)

	// GetAll retrieves every order. Admin credential required server-side.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// UpdateStatus moves an order to the given status via the admin endpoint
	// and returns the updated order.
	UpdateStatus(ctx context.Context, id kernel.ID, status order.Status) (*order.Order, error)

	// Cancel cancels an order via the admin endpoint.
	Cancel(ctx context.Context, id kernel.ID) (*order.Order, error)

	// AssignRider attaches a rider to an order via the admin endpoint.
	AssignRider(ctx context.Context, id kernel.ID, riderID kernel.ID) (*order.Order, error)

	// GetMyDeliveries retrieves orders assigned to the calling rider.
	GetMyDeliveries(ctx context.Context) ([]*order.Order, error)

	// UpdateDeliveryStatus moves an assigned order forward via the rider
	// endpoint and returns the updated order.
	UpdateDeliveryStatus(ctx context.Context, id kernel.ID, status order.Status) (*order.Order, error)
}
