package commands

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/inflight"
)

// SubmitReviewCommandHandler submits a review for a delivered order.
//
// Before the remote call it enforces everything the server would reject
// anyway: the order must be the caller's, must be Delivered, and must not
// already carry a review by this customer. Catching these locally gives the
// caller a precise error instead of a generic remote failure.
type SubmitReviewCommandHandler struct {
	policy  *services.AccessPolicy
	orders  ports.OrderGateway
	reviews ports.ReviewGateway
	muts    *inflight.Guard
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(
	policy *services.AccessPolicy,
	orders ports.OrderGateway,
	reviews ports.ReviewGateway,
	muts *inflight.Guard,
) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		policy:  policy,
		orders:  orders,
		reviews: reviews,
		muts:    muts,
	}
}

// Handle validates ownership, delivery status, and uniqueness, then submits.
// Returns the review as stored by the server.
func (h *SubmitReviewCommandHandler) Handle(
	ctx context.Context, a actor.Actor, cmd SubmitReviewCommand,
) (*review.Review, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.muts.Acquire(cmd.OrderID().String()); err != nil {
		return nil, err
	}
	defer h.muts.Release(cmd.OrderID().String())

	target, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeReview(a, target); err != nil {
		return nil, err
	}

	if target.Status() != order.Delivered {
		return nil, review.ErrNotDelivered
	}

	mine, err := h.reviews.GetMine(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range mine {
		if r.IsFor(cmd.OrderID()) {
			return nil, review.ErrDuplicateReview
		}
	}

	return h.reviews.Create(ctx, ports.CreateReviewRequest{
		OrderID: cmd.OrderID(),
		Rating:  cmd.Rating(),
		Comment: cmd.Comment(),
	})
}
