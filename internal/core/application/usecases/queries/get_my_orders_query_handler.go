package queries

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// GetMyOrdersQueryHandler lists the calling customer's orders.
type GetMyOrdersQueryHandler struct {
	policy *services.AccessPolicy
	orders ports.OrderGateway
}

// NewGetMyOrdersQueryHandler creates a handler for the order history page.
func NewGetMyOrdersQueryHandler(
	policy *services.AccessPolicy,
	orders ports.OrderGateway,
) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{
		policy: policy,
		orders: orders,
	}
}

// Handle fetches the caller's orders from the remote API. The server scopes
// the listing to the credential, so only a customer check happens here.
func (h GetMyOrdersQueryHandler) Handle(ctx context.Context, a actor.Actor) ([]*order.Order, error) {
	if a.IsAnonymous() {
		return nil, services.ErrUnauthenticated
	}
	if !a.IsCustomer() {
		return nil, services.NewForbiddenError(a.Role(), "list own orders")
	}

	return h.orders.GetMine(ctx)
}
