package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/food"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Line is one selected food in the cart. The name, unit price, and image are
// frozen copies taken from the catalog at the moment the item was added; a
// line does not track later catalog changes.
//
// Invariant: quantity is always a positive integer. A quantity that would
// drop to zero or below removes the line instead (see Cart.SetQuantity).
type Line struct {
	foodID    kernel.ID
	name      string
	unitPrice float64
	quantity  int
	image     string
}

// NewLine freezes a catalog item into a cart line with the given quantity.
func NewLine(f food.Food, quantity int) (Line, error) {
	if err := f.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return Line{
		foodID:    f.ID(),
		name:      f.Name(),
		unitPrice: f.Price(),
		quantity:  quantity,
		image:     f.Image(),
	}, nil
}

// RestoreLine rebuilds a line from a persisted snapshot.
func RestoreLine(foodID kernel.ID, name string, unitPrice float64, quantity int, image string) (Line, error) {
	if err := errors.Join(
		foodID.Validate(),
		validateLineName(name),
		validateUnitPrice(unitPrice),
		validateQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return Line{
		foodID:    foodID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		image:     image,
	}, nil
}

// FoodID returns the catalog identifier this line refers to.
func (l Line) FoodID() kernel.ID {
	return l.foodID
}

// Name returns the name frozen at add time.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the price frozen at add time.
func (l Line) UnitPrice() float64 {
	return l.unitPrice
}

// Quantity returns the selected quantity, always positive.
func (l Line) Quantity() int {
	return l.quantity
}

// Image returns the image reference frozen at add time.
func (l Line) Image() string {
	return l.image
}

// Subtotal returns unitPrice × quantity.
func (l Line) Subtotal() float64 {
	return l.unitPrice * float64(l.quantity)
}

func validateLineName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

func validateUnitPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is negative", price))
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return nil
}
