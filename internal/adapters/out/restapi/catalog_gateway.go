package restapi

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/core/domain/model/food"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// CatalogGateway implements ports.CatalogGateway against the /foods and
// /categories endpoints.
type CatalogGateway struct {
	client *Client
}

// NewCatalogGateway creates the catalog gateway.
func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

// GetFoods retrieves the full menu.
func (g *CatalogGateway) GetFoods(ctx context.Context) ([]food.Food, error) {
	env, err := g.client.do(ctx, "get foods", http.MethodGet, "/foods", nil)
	if err != nil {
		return nil, err
	}

	foods := make([]food.Food, 0, len(env.Foods))
	for _, dto := range env.Foods {
		f, foodErr := dto.toDomain()
		if foodErr != nil {
			return nil, foodErr
		}
		foods = append(foods, f)
	}

	return foods, nil
}

// GetFood retrieves one menu item.
func (g *CatalogGateway) GetFood(ctx context.Context, id kernel.ID) (food.Food, error) {
	env, err := g.client.do(ctx, "get food", http.MethodGet, "/foods/"+id.String(), nil)
	if err != nil {
		return food.Food{}, err
	}

	if env.Food == nil {
		return food.Food{}, errs.NewRemoteFailureErrorWithCause("get food",
			fmt.Errorf("response carries no food"))
	}

	return env.Food.toDomain()
}

// GetCategories retrieves the menu categories.
func (g *CatalogGateway) GetCategories(ctx context.Context) ([]food.Category, error) {
	env, err := g.client.do(ctx, "get categories", http.MethodGet, "/categories", nil)
	if err != nil {
		return nil, err
	}

	categories := make([]food.Category, 0, len(env.Categories))
	for _, dto := range env.Categories {
		c, catErr := dto.toDomain()
		if catErr != nil {
			return nil, catErr
		}
		categories = append(categories, c)
	}

	return categories, nil
}
