// Package commands contains business operations that modify state: cart
// edits, checkout, order status changes, rider assignment, and review
// submission. Every command is a validated value object and every handler
// checks the access policy before acting.
package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a request to add a menu item to the cart.
// The price is not part of the command: the handler looks the item up in the
// catalog so the line carries the price at the moment of adding.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	foodID   kernel.ID
	quantity int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add quantity units of a menu
// item to the cart. Quantity must be positive.
func NewAddCartItemCommand(foodID kernel.ID, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFoodID(foodID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// FoodID returns the menu item identifier.
func (c AddCartItemCommand) FoodID() kernel.ID {
	return c.foodID
}

// Quantity returns how many units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setFoodID(foodID kernel.ID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
