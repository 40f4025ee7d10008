package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to drop a line from the cart.
// Removing an item that is not in the cart is a no-op.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	foodID kernel.ID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a menu item line.
func NewRemoveCartItemCommand(foodID kernel.ID) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setFoodID(foodID); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// FoodID returns the menu item identifier.
func (c RemoveCartItemCommand) FoodID() kernel.ID {
	return c.foodID
}

func (c *RemoveCartItemCommand) setFoodID(foodID kernel.ID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}
