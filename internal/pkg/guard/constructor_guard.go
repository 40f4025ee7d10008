// Package guard provides a small helper that ensures value objects,
// commands, and queries are only created through their designated
// constructor functions. A zero-value struct embedding a
// ConstructorGuard fails validation, which catches accidental direct
// initialization before it reaches business logic.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil error for a guard that was never constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the embedding object was created through a
// constructor. The zero value is "not constructed" and fails Validate.
//
// Example:
//
//	type AddCartItemCommand struct {
//	    foodID string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewAddCartItemCommand(foodID string) (AddCartItemCommand, error) {
//	    if foodID == "" {
//	        return AddCartItemCommand{}, errors.New("foodID is required")
//	    }
//	    return AddCartItemCommand{foodID: foodID, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
