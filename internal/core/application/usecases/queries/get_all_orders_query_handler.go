package queries

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// GetAllOrdersQueryHandler lists every order for the back office.
type GetAllOrdersQueryHandler struct {
	policy *services.AccessPolicy
	orders ports.OrderGateway
}

// NewGetAllOrdersQueryHandler creates a handler for the admin order board.
func NewGetAllOrdersQueryHandler(
	policy *services.AccessPolicy,
	orders ports.OrderGateway,
) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{
		policy: policy,
		orders: orders,
	}
}

// Handle fetches all orders. Admin only.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, a actor.Actor) ([]*order.Order, error) {
	if err := h.policy.AuthorizeOrderList(a); err != nil {
		return nil, err
	}

	return h.orders.GetAll(ctx)
}
