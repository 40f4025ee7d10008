package queries

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// GetFoodReviewsQueryHandler fetches a menu item's reviews. The listing is
// decorative on the item page, so a remote failure degrades to an empty
// list instead of breaking the page.
type GetFoodReviewsQueryHandler struct {
	reviews ports.ReviewGateway
	logger  *slog.Logger
}

// NewGetFoodReviewsQueryHandler creates a handler for item-page reviews.
func NewGetFoodReviewsQueryHandler(
	reviews ports.ReviewGateway,
	logger *slog.Logger,
) GetFoodReviewsQueryHandler {
	return GetFoodReviewsQueryHandler{
		reviews: reviews,
		logger:  logger.With("component", "get_food_reviews"),
	}
}

// Handle fetches reviews for the item. Public; no actor required. A remote
// failure is logged and swallowed; every other error propagates.
func (h GetFoodReviewsQueryHandler) Handle(
	ctx context.Context, q GetFoodReviewsQuery,
) ([]*review.Review, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	found, err := h.reviews.GetByFood(ctx, q.FoodID())
	if err != nil {
		if errors.Is(err, errs.ErrRemoteFailure) {
			h.logger.WarnContext(ctx, "review fetch failed, rendering without reviews",
				"food_id", q.FoodID().String(), "error", err)
			return []*review.Review{}, nil
		}
		return nil, err
	}

	return found, nil
}
