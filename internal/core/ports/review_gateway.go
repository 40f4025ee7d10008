package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
)

// CreateReviewRequest carries a new review for a delivered order.
type CreateReviewRequest struct {
	OrderID kernel.ID
	Rating  int
	Comment string
}

// ReviewGateway is the remote API surface for reviews.
type ReviewGateway interface {
	// Create submits a review and returns it as stored by the server.
	Create(ctx context.Context, req CreateReviewRequest) (*review.Review, error)

	// GetMine retrieves the calling customer's reviews.
	GetMine(ctx context.Context) ([]*review.Review, error)

	// GetByFood retrieves reviews mentioning the given food item.
	GetByFood(ctx context.Context, foodID kernel.ID) ([]*review.Review, error)
}
