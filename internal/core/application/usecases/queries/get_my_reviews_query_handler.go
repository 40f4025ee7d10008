package queries

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// GetMyReviewsQueryHandler lists the calling customer's reviews. The order
// history page uses this to mark which delivered orders already carry one.
type GetMyReviewsQueryHandler struct {
	policy  *services.AccessPolicy
	reviews ports.ReviewGateway
}

// NewGetMyReviewsQueryHandler creates a handler for own-review reads.
func NewGetMyReviewsQueryHandler(
	policy *services.AccessPolicy,
	reviews ports.ReviewGateway,
) GetMyReviewsQueryHandler {
	return GetMyReviewsQueryHandler{
		policy:  policy,
		reviews: reviews,
	}
}

// Handle fetches the caller's reviews.
func (h GetMyReviewsQueryHandler) Handle(ctx context.Context, a actor.Actor) ([]*review.Review, error) {
	if a.IsAnonymous() {
		return nil, services.ErrUnauthenticated
	}
	if !a.IsCustomer() {
		return nil, services.NewForbiddenError(a.Role(), "list own reviews")
	}

	return h.reviews.GetMine(ctx)
}
