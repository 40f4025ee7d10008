// Package kernel contains shared value objects used across the storefront
// domain model. These are small immutable building blocks with no business
// logic of their own: identifiers for remote entities and locally generated
// request keys.
//
// All value objects here follow the same rules:
//   - Created only through factory functions, never direct initialization
//   - The zero value is invalid and fails Validate
//   - Immutable and safe for concurrent use
package kernel
