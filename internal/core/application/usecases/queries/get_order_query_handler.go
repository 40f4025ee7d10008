package queries

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// GetOrderQueryHandler fetches one order and checks the caller may see it.
type GetOrderQueryHandler struct {
	policy *services.AccessPolicy
	orders ports.OrderGateway
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(
	policy *services.AccessPolicy,
	orders ports.OrderGateway,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		policy: policy,
		orders: orders,
	}
}

// Handle fetches the order and authorizes visibility: the owning customer,
// an admin, or the assigned rider.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context, a actor.Actor, q GetOrderQuery,
) (*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, q.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeOrderView(a, o); err != nil {
		return nil, err
	}

	return o, nil
}
