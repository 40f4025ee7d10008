package queries

import (
	"context"
	"sync"

	"storefront/internal/core/domain/model/food"
	"storefront/internal/core/ports"
)

// Catalog is the menu page payload: the foods plus their categories.
type Catalog struct {
	Foods      []food.Food
	Categories []food.Category
}

// GetCatalogQueryHandler fetches the menu. Foods and categories live on
// separate endpoints, so both are fetched concurrently. Foods are required;
// a category failure degrades to an uncategorized menu rather than an
// error, since the menu itself is still renderable.
type GetCatalogQueryHandler struct {
	catalog ports.CatalogGateway
}

// NewGetCatalogQueryHandler creates a handler for catalog reads.
func NewGetCatalogQueryHandler(catalog ports.CatalogGateway) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{catalog: catalog}
}

// Handle fetches foods and categories and combines them. Catalog reads are
// public, so no actor is required.
func (h GetCatalogQueryHandler) Handle(ctx context.Context) (Catalog, error) {
	var (
		wg         sync.WaitGroup
		foods      []food.Food
		foodsErr   error
		categories []food.Category
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		foods, foodsErr = h.catalog.GetFoods(ctx)
	}()
	go func() {
		defer wg.Done()
		categories, _ = h.catalog.GetCategories(ctx)
	}()
	wg.Wait()

	if foodsErr != nil {
		return Catalog{}, foodsErr
	}

	return Catalog{Foods: foods, Categories: categories}, nil
}
