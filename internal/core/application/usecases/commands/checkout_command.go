package commands

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to turn the caller's cart into an
// order. It carries the shipping address and payment method; the items and
// the total come from the cart at handling time.
//
// Example:
//
//	addr, err := order.NewShippingAddress("John Doe", "+123456", "1 Main St", "Springfield", "12345")
//	if err != nil {
//	    return err
//	}
//	cmd, err := commands.NewCheckoutCommand(addr, order.CashOnDelivery)
//	if err != nil {
//	    return err
//	}
//	placed, err := handler.Handle(ctx, customer, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	address order.ShippingAddress
	payment order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command from a validated shipping
// address and payment method.
func NewCheckoutCommand(address order.ShippingAddress, payment order.PaymentMethod) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAddress(address),
		cmd.setPayment(payment),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// Address returns the shipping address.
func (c CheckoutCommand) Address() order.ShippingAddress {
	return c.address
}

// Payment returns the payment method.
func (c CheckoutCommand) Payment() order.PaymentMethod {
	return c.payment
}

func (c *CheckoutCommand) setAddress(address order.ShippingAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CheckoutCommand) setPayment(payment order.PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	c.payment = payment
	return nil
}
