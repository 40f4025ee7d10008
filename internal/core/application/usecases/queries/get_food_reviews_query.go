package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetFoodReviewsQueryIsNotConstructed = errors.New(
	"GetFoodReviewsQuery must be created via NewGetFoodReviewsQuery constructor",
)

// GetFoodReviewsQuery retrieves the reviews shown on a menu item's page.
type GetFoodReviewsQuery struct { //nolint:recvcheck //using for validation
	foodID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetFoodReviewsQuery creates a query for one menu item's reviews.
func NewGetFoodReviewsQuery(foodID kernel.ID) (GetFoodReviewsQuery, error) {
	q := GetFoodReviewsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setFoodID(foodID); err != nil {
		return GetFoodReviewsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFoodReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetFoodReviewsQueryIsNotConstructed)
}

// FoodID returns the menu item identifier.
func (q GetFoodReviewsQuery) FoodID() kernel.ID {
	return q.foodID
}

func (q *GetFoodReviewsQuery) setFoodID(foodID kernel.ID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	q.foodID = foodID
	return nil
}
