// Package food models catalog entries served by the remote storefront API.
// Foods are read-only on this side: the client browses them and copies their
// current price and name into cart lines, but never mutates the catalog.
package food

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrFoodIsNotConstructed is returned when a Food was not created via NewFood.
var ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood constructor")

// Food is a catalog item at the moment it was fetched. Price and name are the
// values current at fetch time; cart lines freeze them on add so later catalog
// edits never leak into an existing cart or a placed order.
type Food struct {
	id       kernel.ID
	name     string
	price    float64
	image    string
	category string

	isConstructed bool
}

// NewFood creates a catalog item. The id must be a valid server-issued
// identifier, the name must not be empty, and the price must not be negative.
func NewFood(id kernel.ID, name string, price float64, image, category string) (Food, error) {
	f := Food{isConstructed: true}

	if err := errors.Join(
		f.setID(id),
		f.setName(name),
		f.setPrice(price),
	); err != nil {
		return Food{}, err
	}

	f.image = image
	f.category = category
	return f, nil
}

// Validate ensures the Food was created via NewFood.
func (f Food) Validate() error {
	if !f.isConstructed {
		return ErrFoodIsNotConstructed
	}
	return nil
}

// ID returns the catalog identifier.
func (f Food) ID() kernel.ID {
	return f.id
}

// Name returns the display name.
func (f Food) Name() string {
	return f.name
}

// Price returns the current catalog price.
func (f Food) Price() float64 {
	return f.price
}

// Image returns the image reference.
func (f Food) Image() string {
	return f.image
}

// Category returns the category name, empty when uncategorized.
func (f Food) Category() string {
	return f.category
}

func (f *Food) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Food) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	f.name = name
	return nil
}

func (f *Food) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	f.price = price
	return nil
}

// Category is a catalog grouping, also read-only on this side.
type Category struct {
	ID   kernel.ID
	Name string
}
