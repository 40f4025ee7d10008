// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value falls outside an allowed range
//   - ObjectNotFoundError: for when an object cannot be found
//   - RemoteFailureError: for when a call to the remote storefront API fails
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Domain-specific failure conditions (empty cart, illegal status transition,
// duplicate review, and so on) live as sentinels next to the aggregate that
// owns the rule; this package only carries the cross-cutting shapes.
package errs
