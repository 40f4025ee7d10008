package ports

import (
	"context"

	"storefront/internal/core/domain/model/food"
	"storefront/internal/core/domain/model/kernel"
)

// CatalogGateway is the remote API surface for the food catalog. Catalog
// reads are public; no credential is required.
type CatalogGateway interface {
	// GetFoods retrieves the full menu.
	GetFoods(ctx context.Context) ([]food.Food, error)

	// GetFood retrieves one menu item by id. Cart additions go through this
	// so the line price is the catalog price at the moment of adding.
	GetFood(ctx context.Context, id kernel.ID) (food.Food, error)

	// GetCategories retrieves the menu categories.
	GetCategories(ctx context.Context) ([]food.Category, error)
}
