package order

import (
	"errors"

	"storefront/internal/pkg/errs"
)

// ShippingAddress is the delivery destination captured at checkout. Postal
// code is optional; the other fields are required.
type ShippingAddress struct {
	name       string
	phone      string
	address    string
	city       string
	postalCode string

	isConstructed bool
}

// ErrShippingAddressIsNotConstructed is returned when a ShippingAddress was
// not created via NewShippingAddress.
var ErrShippingAddressIsNotConstructed = errors.New(
	"ShippingAddress must be created via NewShippingAddress constructor",
)

// NewShippingAddress creates a validated delivery destination.
func NewShippingAddress(name, phone, address, city, postalCode string) (ShippingAddress, error) {
	if err := errors.Join(
		requireField("name", name),
		requireField("phone", phone),
		requireField("address", address),
		requireField("city", city),
	); err != nil {
		return ShippingAddress{}, err
	}

	return ShippingAddress{
		name:          name,
		phone:         phone,
		address:       address,
		city:          city,
		postalCode:    postalCode,
		isConstructed: true,
	}, nil
}

// Validate ensures the address was created via NewShippingAddress.
func (a ShippingAddress) Validate() error {
	if !a.isConstructed {
		return ErrShippingAddressIsNotConstructed
	}
	return nil
}

// Name returns the recipient name.
func (a ShippingAddress) Name() string { return a.name }

// Phone returns the contact phone number.
func (a ShippingAddress) Phone() string { return a.phone }

// Address returns the street address.
func (a ShippingAddress) Address() string { return a.address }

// City returns the city.
func (a ShippingAddress) City() string { return a.city }

// PostalCode returns the postal code, possibly empty.
func (a ShippingAddress) PostalCode() string { return a.postalCode }

func requireField(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

// PaymentMethod is how the customer pays for the order. The set matches what
// the remote API accepts.
type PaymentMethod string

const (
	// CashOnDelivery is payment in cash to the rider.
	CashOnDelivery PaymentMethod = "Cash on Delivery"

	// Card is payment by credit or debit card.
	Card PaymentMethod = "Card"

	// Online is payment through an online provider.
	Online PaymentMethod = "Online"
)

// ParsePaymentMethod validates a wire value into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case CashOnDelivery, Card, Online:
		return PaymentMethod(s), nil
	default:
		return "", errs.NewValueIsInvalidError("paymentMethod")
	}
}

// String returns the wire value.
func (p PaymentMethod) String() string {
	return string(p)
}

// Validate checks the PaymentMethod is one of the accepted values.
func (p PaymentMethod) Validate() error {
	_, err := ParsePaymentMethod(string(p))
	return err
}
