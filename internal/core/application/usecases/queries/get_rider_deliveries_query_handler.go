package queries

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// DeliveryStats summarizes a rider's workload for the dashboard header.
type DeliveryStats struct {
	Total     int
	Active    int
	Delivered int
}

// RiderDeliveries is the rider dashboard payload.
type RiderDeliveries struct {
	Orders []*order.Order
	Stats  DeliveryStats
}

// GetRiderDeliveriesQueryHandler lists the calling rider's assigned orders
// and aggregates the counters shown on the dashboard.
type GetRiderDeliveriesQueryHandler struct {
	policy *services.AccessPolicy
	orders ports.OrderGateway
}

// NewGetRiderDeliveriesQueryHandler creates a handler for the rider dashboard.
func NewGetRiderDeliveriesQueryHandler(
	policy *services.AccessPolicy,
	orders ports.OrderGateway,
) GetRiderDeliveriesQueryHandler {
	return GetRiderDeliveriesQueryHandler{
		policy: policy,
		orders: orders,
	}
}

// Handle fetches the rider's deliveries. Delivered orders count toward the
// history; everything non-terminal is active work. Cancelled orders stay in
// the list but count toward neither.
func (h GetRiderDeliveriesQueryHandler) Handle(
	ctx context.Context, a actor.Actor,
) (RiderDeliveries, error) {
	if err := h.policy.AuthorizeDeliveryList(a); err != nil {
		return RiderDeliveries{}, err
	}

	assigned, err := h.orders.GetMyDeliveries(ctx)
	if err != nil {
		return RiderDeliveries{}, err
	}

	stats := DeliveryStats{Total: len(assigned)}
	for _, o := range assigned {
		switch {
		case o.Status() == order.Delivered:
			stats.Delivered++
		case !o.Status().IsTerminal():
			stats.Active++
		}
	}

	return RiderDeliveries{Orders: assigned, Stats: stats}, nil
}
