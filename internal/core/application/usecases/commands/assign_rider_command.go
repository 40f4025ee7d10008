package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand represents a request to attach a rider to an order.
// Reassignment is allowed; the new rider simply replaces the old one.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	riderID kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a rider assignment command.
func NewAssignRiderCommand(orderID, riderID kernel.ID) (AssignRiderCommand, error) {
	cmd := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRiderID(riderID),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c AssignRiderCommand) OrderID() kernel.ID {
	return c.orderID
}

// RiderID returns the rider to assign.
func (c AssignRiderCommand) RiderID() kernel.ID {
	return c.riderID
}

func (c *AssignRiderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRiderCommand) setRiderID(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
