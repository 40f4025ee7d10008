package kernel

import (
	"strings"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed indicates an ID was not created through one of the
// factory functions. Returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object identifying an entity. Entities owned by the remote
// storefront API (users, foods, orders, riders, reviews) carry server-issued
// opaque string identifiers, so ID wraps a non-empty string rather than a
// fixed-width format.
//
// The zero value is invalid; construct with NewID (locally generated keys,
// e.g. idempotency keys for checkout) or IDFromString (server-issued ids).
//
// Example:
//
//	orderID, err := kernel.IDFromString(dto.ID)
//	if err != nil {
//	    return nil, fmt.Errorf("invalid order id: %w", err)
//	}
type ID struct {
	value string
}

// NewID generates a fresh client-side identifier (UUIDv4 text form). Used for
// keys the client mints itself, such as per-mutation idempotency keys; remote
// entity ids always come from the server via IDFromString.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// IDFromString creates an ID from a server-issued identifier.
// Surrounding whitespace is trimmed; an empty result is invalid.
func IDFromString(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, ErrIDIsNotConstructed
	}
	return ID{value: s}, nil
}

// String returns the identifier text.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two identifiers by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate reports whether the ID was properly constructed.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
