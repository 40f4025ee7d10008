// Package order implements the order lifecycle: an aggregate whose purchased
// items are immutable snapshots and whose status walks a fixed state machine
// from Pending to a terminal Delivered or Cancelled.
//
// Who may drive which transition is not decided here; that is the access
// policy's job (internal/core/domain/services). This package only answers
// whether a given step is legal at all.
package order
