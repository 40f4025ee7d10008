package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders always follow the fulfilment
// workflow.
//
// State transitions:
//
//	Pending ──> Preparing ──> OutForDelivery ──> Delivered
//	   │            │               │
//	   └────────────┴───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Cancellation is reachable from any
// non-terminal state; forward movement is strictly one step at a time, no
// skipping and no going back.
//
// Status is a value object that validates state transitions and provides the
// display strings the remote API uses on the wire.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is placed and awaiting
	// acceptance by the kitchen.
	Pending

	// Preparing indicates the kitchen has accepted the order and is
	// preparing the food.
	Preparing

	// OutForDelivery indicates the order has left the kitchen and is on its
	// way to the customer.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal; it also
	// unlocks review submission for the order's customer.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns the wire/display names for all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// StatusFromString parses a wire/display name into a Status. Used when
// decoding orders fetched from the remote API.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire/display name of the status, "Unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle
// step. The full table:
//
//	Pending        -> Preparing, Cancelled
//	Preparing      -> OutForDelivery, Cancelled
//	OutForDelivery -> Delivered, Cancelled
//	Delivered      -> (none)
//	Cancelled      -> (none)
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}

	if next == Cancelled {
		return s == Pending || s == Preparing || s == OutForDelivery
	}

	switch s {
	case Pending:
		return next == Preparing
	case Preparing:
		return next == OutForDelivery
	case OutForDelivery:
		return next == Delivered
	default:
		return false
	}
}

// Next returns the forward step in the fulfilment sequence. Returns an
// InvalidTransitionError for terminal or invalid statuses.
func (s Status) Next() (Status, error) {
	switch s {
	case Pending:
		return Preparing, nil
	case Preparing:
		return OutForDelivery, nil
	case OutForDelivery:
		return Delivered, nil
	default:
		return Unknown, NewInvalidTransitionError(s, Unknown)
	}
}

// Progress maps the status onto the four-step tracking scale shown to
// customers: Pending 0, Preparing 1, Out for Delivery 2, Delivered 3.
// Cancelled has no position on the scale and must be displayed distinctly;
// for it (and for invalid values) ok is false.
func (s Status) Progress() (ordinal int, ok bool) {
	switch s {
	case Pending:
		return 0, true
	case Preparing:
		return 1, true
	case OutForDelivery:
		return 2, true
	case Delivered:
		return 3, true
	default:
		return 0, false
	}
}
