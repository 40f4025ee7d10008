package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Item is one purchased line inside an order: a frozen copy of the cart line
// taken at checkout. Later changes to the food catalog (price, name, image)
// never retroactively alter a placed order.
type Item struct {
	foodID   kernel.ID
	name     string
	quantity int
	price    float64
	image    string
}

// NewItem creates a frozen order line. The price is the unit price at the
// moment of purchase.
func NewItem(foodID kernel.ID, name string, quantity int, price float64, image string) (Item, error) {
	if err := errors.Join(
		foodID.Validate(),
		validateItemName(name),
		validateItemQuantity(quantity),
		validateItemPrice(price),
	); err != nil {
		return Item{}, err
	}

	return Item{
		foodID:   foodID,
		name:     name,
		quantity: quantity,
		price:    price,
		image:    image,
	}, nil
}

// FoodID returns the catalog reference of the purchased item.
func (i Item) FoodID() kernel.ID { return i.foodID }

// Name returns the name frozen at purchase time.
func (i Item) Name() string { return i.name }

// Quantity returns the purchased quantity.
func (i Item) Quantity() int { return i.quantity }

// Price returns the unit price frozen at purchase time.
func (i Item) Price() float64 { return i.price }

// Image returns the image reference frozen at purchase time.
func (i Item) Image() string { return i.image }

// Subtotal returns price × quantity.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

func validateItemName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

func validateItemQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return nil
}

func validateItemPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	return nil
}
