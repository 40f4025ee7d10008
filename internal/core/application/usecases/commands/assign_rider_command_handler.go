package commands

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/inflight"
)

// AssignRiderCommandHandler attaches a rider to an order. Assignment never
// changes the order's status and is rejected on terminal orders.
type AssignRiderCommandHandler struct {
	policy *services.AccessPolicy
	orders ports.OrderGateway
	muts   *inflight.Guard
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(
	policy *services.AccessPolicy,
	orders ports.OrderGateway,
	muts *inflight.Guard,
) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		policy: policy,
		orders: orders,
		muts:   muts,
	}
}

// Handle authorizes the caller, checks the order can still take a rider, and
// forwards the assignment. Returns the order as the server now sees it.
func (h *AssignRiderCommandHandler) Handle(
	ctx context.Context, a actor.Actor, cmd AssignRiderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.AuthorizeAssignRider(a); err != nil {
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

	if err = current.ValidateAssignable(); err != nil {
		return nil, err
	}

	return h.orders.AssignRider(ctx, cmd.OrderID(), cmd.RiderID())
}
