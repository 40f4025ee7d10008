// Package services holds domain services that span aggregates.
//
// AccessPolicy is the single place that answers "may this actor perform this
// operation". Use case handlers ask it before touching the remote API; HTTP
// handlers never make the call themselves.
package services

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
)

var (
	// ErrUnauthenticated is returned when the operation requires a signed-in
	// actor and none is present.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is the sentinel wrapped by every ForbiddenError.
	ErrForbidden = errors.New("operation is not permitted for this actor")
)

// ForbiddenError reports an authenticated actor attempting an operation their
// role does not grant.
type ForbiddenError struct {
	Role      actor.Role
	Operation string
}

func NewForbiddenError(role actor.Role, operation string) *ForbiddenError {
	return &ForbiddenError{Role: role, Operation: operation}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%v: %s may not %s", ErrForbidden, e.Role, e.Operation)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// AccessPolicy is the capability table for the storefront.
//
// The rules it encodes:
//   - cart and checkout belong to customers;
//   - admins drive any legal status transition, including cancellation;
//   - riders drive only forward transitions on orders assigned to them;
//   - reviews are written by the customer who owns the delivered order.
type AccessPolicy struct{}

func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{}
}

// AuthorizeCartAccess gates every cart mutation and read.
func (p *AccessPolicy) AuthorizeCartAccess(a actor.Actor) error {
	return p.requireCustomer(a, "access the cart")
}

// AuthorizeCheckout gates order placement.
func (p *AccessPolicy) AuthorizeCheckout(a actor.Actor) error {
	return p.requireCustomer(a, "check out")
}

// AuthorizeOrderView gates reading a single order. Customers see their own
// orders, riders see orders assigned to them, admins see everything.
func (p *AccessPolicy) AuthorizeOrderView(a actor.Actor, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if a.IsAnonymous() {
		return ErrUnauthenticated
	}
	if a.IsAdmin() {
		return nil
	}
	if a.IsCustomer() && o.CustomerID().IsEqual(a.ID()) {
		return nil
	}
	if a.IsRider() && o.IsAssignedTo(a.ID()) {
		return nil
	}
	return NewForbiddenError(a.Role(), "view this order")
}

// AuthorizeTransition decides whether the actor may move the order to next.
// Legality of the step itself is the aggregate's concern; this only answers
// who may drive it.
func (p *AccessPolicy) AuthorizeTransition(a actor.Actor, o *order.Order, next order.Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if a.IsAnonymous() {
		return ErrUnauthenticated
	}
	if a.IsAdmin() {
		return nil
	}
	if next == order.Cancelled {
		return NewForbiddenError(a.Role(), "cancel an order")
	}
	if a.IsRider() {
		if !o.IsAssignedTo(a.ID()) {
			return NewForbiddenError(a.Role(), "update an order assigned to someone else")
		}
		return nil
	}
	return NewForbiddenError(a.Role(), "change order status")
}

// AuthorizeAssignRider gates rider assignment. Admin only.
func (p *AccessPolicy) AuthorizeAssignRider(a actor.Actor) error {
	if a.IsAnonymous() {
		return ErrUnauthenticated
	}
	if !a.IsAdmin() {
		return NewForbiddenError(a.Role(), "assign a rider")
	}
	return nil
}

// AuthorizeOrderList gates the all-orders listing. Admin only.
func (p *AccessPolicy) AuthorizeOrderList(a actor.Actor) error {
	if a.IsAnonymous() {
		return ErrUnauthenticated
	}
	if !a.IsAdmin() {
		return NewForbiddenError(a.Role(), "list all orders")
	}
	return nil
}

// AuthorizeDeliveryList gates the rider's own delivery listing.
func (p *AccessPolicy) AuthorizeDeliveryList(a actor.Actor) error {
	if a.IsAnonymous() {
		return ErrUnauthenticated
	}
	if !a.IsRider() {
		return NewForbiddenError(a.Role(), "list deliveries")
	}
	return nil
}

// AuthorizeReview gates review submission: the customer who owns the order.
func (p *AccessPolicy) AuthorizeReview(a actor.Actor, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if a.IsAnonymous() {
		return ErrUnauthenticated
	}
	if !a.IsCustomer() {
		return NewForbiddenError(a.Role(), "review an order")
	}
	if !o.CustomerID().IsEqual(a.ID()) {
		return NewForbiddenError(a.Role(), "review someone else's order")
	}
	return nil
}

func (p *AccessPolicy) requireCustomer(a actor.Actor, operation string) error {
	if a.IsAnonymous() {
		return ErrUnauthenticated
	}
	if !a.IsCustomer() {
		return NewForbiddenError(a.Role(), operation)
	}
	return nil
}
