package actor

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Role is the capability class of the acting party. Every gated operation in
// the storefront is authorized against exactly one role.
//
// Roles, from least to most privileged surface:
//
//	Anonymous — no credential; may only browse
//	Customer  — shops, checks out, reviews own delivered orders
//	Rider     — advances delivery status on orders assigned to them
//	Admin     — full order lifecycle control and rider assignment
type Role int

const (
	// Anonymous represents an actor with no resolved credential.
	// It is the zero value so an unset role never gains capabilities.
	Anonymous Role = iota

	// Customer is an authenticated shopper.
	Customer

	// Admin is a back-office operator.
	Admin

	// Rider is a delivery rider.
	Rider
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Anonymous: "anonymous",
		Customer:  "customer",
		Admin:     "admin",
		Rider:     "rider",
	}
}

// ParseRole maps a credential claim to a Role. The remote API issues "user"
// for customers in older tokens, so both spellings are accepted.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer", "user":
		return Customer, nil
	case "admin":
		return Admin, nil
	case "rider":
		return Rider, nil
	default:
		return Anonymous, errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a known role", s),
		)
	}
}

// String returns the canonical role name, "anonymous" for unknown values.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "anonymous"
}

// Validate checks the Role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}
