package commands

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/inflight"
)

// ChangeOrderStatusCommandHandler moves an order through its lifecycle.
//
// The handler fetches the current order first and validates both the actor's
// capability and the step's legality before any mutation goes out. The
// in-flight guard rejects a second mutation of the same order while one is
// still running, so a double-clicked button cannot race itself. The server's
// response replaces the local view; there is no optimistic update to roll
// back.
type ChangeOrderStatusCommandHandler struct {
	policy *services.AccessPolicy
	orders ports.OrderGateway
	muts   *inflight.Guard
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	policy *services.AccessPolicy,
	orders ports.OrderGateway,
	muts *inflight.Guard,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		policy: policy,
		orders: orders,
		muts:   muts,
	}
}

// Handle validates, authorizes, and routes the transition to the endpoint
// matching the actor's role. Returns the order as the server now sees it.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context, a actor.Actor, cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.muts.Acquire(cmd.OrderID().String()); err != nil {
		return nil, err
	}
	defer h.muts.Release(cmd.OrderID().String())

	current, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeTransition(a, current, cmd.Next()); err != nil {
		return nil, err
	}

	if err = current.ValidateTransition(cmd.Next()); err != nil {
		return nil, err
	}

	switch {
	case a.IsRider():
		return h.orders.UpdateDeliveryStatus(ctx, cmd.OrderID(), cmd.Next())
	case cmd.Next() == order.Cancelled:
		return h.orders.Cancel(ctx, cmd.OrderID())
	default:
		return h.orders.UpdateStatus(ctx, cmd.OrderID(), cmd.Next())
	}
}
