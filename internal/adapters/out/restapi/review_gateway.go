package restapi

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ReviewGateway implements ports.ReviewGateway against the /reviews endpoints.
type ReviewGateway struct {
	client *Client
}

// NewReviewGateway creates the review gateway.
func NewReviewGateway(client *Client) *ReviewGateway {
	return &ReviewGateway{client: client}
}

// Create submits a review.
func (g *ReviewGateway) Create(ctx context.Context, req ports.CreateReviewRequest) (*review.Review, error) {
	payload := map[string]any{
		"orderId": req.OrderID.String(),
		"rating":  req.Rating,
		"comment": req.Comment,
	}

	env, err := g.client.do(ctx, "create review", http.MethodPost, "/reviews", payload)
	if err != nil {
		return nil, err
	}

	if env.Review == nil {
		return nil, errs.NewRemoteFailureErrorWithCause("create review",
			fmt.Errorf("response carries no review"))
	}

	return env.Review.toDomain()
}

// GetMine retrieves the calling customer's reviews.
func (g *ReviewGateway) GetMine(ctx context.Context) ([]*review.Review, error) {
	env, err := g.client.do(ctx, "get my reviews", http.MethodGet, "/reviews/myreviews", nil)
	if err != nil {
		return nil, err
	}

	return reviewsToDomain(env.Reviews)
}

// GetByFood retrieves reviews for one menu item.
func (g *ReviewGateway) GetByFood(ctx context.Context, foodID kernel.ID) ([]*review.Review, error) {
	env, err := g.client.do(ctx, "get food reviews", http.MethodGet, "/reviews/food/"+foodID.String(), nil)
	if err != nil {
		return nil, err
	}

	return reviewsToDomain(env.Reviews)
}
