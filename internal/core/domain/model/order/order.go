package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// DeliveryFee is the fixed fee added to the cart subtotal at checkout, in
// currency units.
const DeliveryFee = 5.0

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

	// ErrInvalidTransition is the sentinel for illegal status changes,
	// including any action on a terminal order.
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// InvalidTransitionError reports an attempted status change that the
// lifecycle table forbids. The order is left unchanged when it is returned.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// attempted step.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Order is a purchase record: immutable in its items, mutable only in its
// status and rider assignment. It is the aggregate root of the order
// lifecycle.
//
// Order follows these invariants:
//   - Items, shipping address, payment method, and total price are frozen at
//     creation and never change
//   - Status only moves along the lifecycle table (see Status)
//   - A rider can be assigned or reassigned only while the order is
//     non-terminal; assignment never changes the status
//   - Orders are never deleted, only transitioned to Cancelled
//
// Orders are persisted by the remote API; this aggregate is reconstructed
// from fetched state via RestoreOrder and enforces the lifecycle rules
// locally before any mutation is sent to the collaborator.
type Order struct {
	// id is the server-issued order identifier
	id kernel.ID

	// customerID identifies the customer who placed the order
	customerID kernel.ID

	// items are the frozen purchase lines
	items []Item

	// address is the delivery destination captured at checkout
	address ShippingAddress

	// payment is the method chosen at checkout
	payment PaymentMethod

	// totalPrice is the items subtotal plus the delivery fee
	totalPrice float64

	// status is the current lifecycle state
	status Status

	// createdAt is the placement timestamp
	createdAt time.Time

	// riderID is the assigned rider (nil if unassigned)
	riderID *kernel.ID

	// isConstructed ensures the order was created via RestoreOrder
	isConstructed bool
}

// RestoreOrder reconstructs an order aggregate from persisted state fetched
// off the remote API. All invariants are validated; a nil riderID means the
// order has no rider assigned yet.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	items []Item,
	address ShippingAddress,
	payment PaymentMethod,
	totalPrice float64,
	status Status,
	createdAt time.Time,
	riderID *kernel.ID,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setAddress(address),
		o.setPayment(payment),
		o.setTotalPrice(totalPrice),
		o.setStatus(status),
		o.setRider(riderID),
	); err != nil {
		return nil, err
	}

	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order was created through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// Items returns the frozen purchase lines. The returned slice is a copy.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// ShippingAddress returns the delivery destination.
func (o *Order) ShippingAddress() ShippingAddress {
	return o.address
}

// PaymentMethod returns the payment method chosen at checkout.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.payment
}

// TotalPrice returns the items subtotal plus delivery fee, frozen at checkout.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Rider returns the assigned rider's ID, nil when unassigned.
func (o *Order) Rider() *kernel.ID {
	return o.riderID
}

// IsAssignedTo reports whether the given rider is the order's assigned rider.
func (o *Order) IsAssignedTo(riderID kernel.ID) bool {
	return o.riderID != nil && o.riderID.IsEqual(riderID)
}

// Progress returns the customer-facing tracking ordinal of the current
// status; ok is false for Cancelled, which sits outside the progress scale.
func (o *Order) Progress() (ordinal int, ok bool) {
	return o.status.Progress()
}

// ValidateTransition checks whether moving to next is legal from the current
// status without performing the transition. Returns an
// InvalidTransitionError (unwrapping to ErrInvalidTransition) when the
// lifecycle table forbids the step.
//
// Use this before issuing the status change to the remote API; the fetched
// aggregate stays untouched until the collaborator confirms.
func (o *Order) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(next) {
		return NewInvalidTransitionError(o.status, next)
	}
	return nil
}

// TransitionTo moves the order to the next status. Illegal steps (reverse,
// skipping, or any step off a terminal status) fail with
// InvalidTransitionError and leave the order unchanged.
func (o *Order) TransitionTo(next Status) error {
	if err := o.ValidateTransition(next); err != nil {
		return err
	}

	o.status = next
	return nil
}

// Cancel transitions the order to Cancelled. Legal from any non-terminal
// status; cancelling a Delivered or already Cancelled order fails with
// InvalidTransitionError.
func (o *Order) Cancel() error {
	return o.TransitionTo(Cancelled)
}

// ValidateAssignable checks whether a rider may be assigned: allowed at any
// time before the order reaches a terminal status.
func (o *Order) ValidateAssignable() error {
	if o.status.IsTerminal() {
		return NewInvalidTransitionError(o.status, o.status)
	}
	return nil
}

// AssignRider sets the order's assigned rider. Reassignment overwrites the
// prior assignment; no history is kept. Assignment never changes the order
// status. Fails on terminal orders.
func (o *Order) AssignRider(riderID kernel.ID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if err := o.ValidateAssignable(); err != nil {
		return err
	}

	o.riderID = &riderID
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errors.New("order must contain at least one item")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address ShippingAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setPayment(payment PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return fmt.Errorf("total price %v is negative", totalPrice)
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setRider(riderID *kernel.ID) error {
	if riderID == nil {
		return nil
	}
	if err := riderID.Validate(); err != nil {
		return err
	}
	rid := *riderID
	o.riderID = &rid
	return nil
}
