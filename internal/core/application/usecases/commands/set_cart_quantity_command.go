package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrSetCartQuantityCommandIsNotConstructed = errors.New(
	"SetCartQuantityCommand must be created via NewSetCartQuantityCommand constructor",
)

// SetCartQuantityCommand represents a request to set a cart line's quantity
// to an absolute value. Zero and negative values remove the line; that is
// how quantity steppers in the UI drop an item.
type SetCartQuantityCommand struct { //nolint:recvcheck //using for validation
	foodID   kernel.ID
	quantity int

	guard guard.ConstructorGuard
}

// NewSetCartQuantityCommand creates a command to set the line quantity.
// Any integer is accepted; values at or below zero mean removal.
func NewSetCartQuantityCommand(foodID kernel.ID, quantity int) (SetCartQuantityCommand, error) {
	cmd := SetCartQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setFoodID(foodID); err != nil {
		return SetCartQuantityCommand{}, err
	}

	cmd.quantity = quantity

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCartQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetCartQuantityCommandIsNotConstructed)
}

// FoodID returns the menu item identifier.
func (c SetCartQuantityCommand) FoodID() kernel.ID {
	return c.foodID
}

// Quantity returns the absolute quantity to set.
func (c SetCartQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *SetCartQuantityCommand) setFoodID(foodID kernel.ID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}
