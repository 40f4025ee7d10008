// Package cart implements the client-local cart aggregate: the only mutable
// state the storefront owns itself. Everything else lives behind the remote
// API; the cart is assembled locally, persisted as a durable snapshot between
// sessions, and consumed atomically at checkout.
package cart

import (
	"errors"

	"storefront/internal/core/domain/model/food"
	"storefront/internal/core/domain/model/kernel"
)

// ErrEmptyCart is returned when checkout is attempted on a cart with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// Cart is an ordered collection of lines, unique by food id. Insertion order
// is preserved for display; totals do not depend on it.
//
// Cart follows these invariants:
//   - At most one line per food id; repeated adds merge quantities
//   - Every line has a positive quantity
//   - Total() always equals the sum of line subtotals
//
// The aggregate is pure in-memory state. Persistence of the snapshot after
// each mutation is the caller's responsibility (see ports.CartStore).
type Cart struct {
	lines []Line
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// RestoreCart rebuilds a cart from persisted lines, preserving order.
// Duplicate food ids in the snapshot are merged into the earlier line.
func RestoreCart(lines []Line) *Cart {
	c := NewCart()
	for _, l := range lines {
		if i := c.indexOf(l.foodID); i >= 0 {
			c.lines[i].quantity += l.quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// AddItem puts quantity units of the catalog item into the cart. When a line
// for the same food already exists its quantity is incremented and the
// originally frozen price is kept; otherwise a new line freezes the item's
// current price, name, and image.
func (c *Cart) AddItem(f food.Food, quantity int) error {
	if i := c.indexOf(f.ID()); i >= 0 {
		if quantity <= 0 {
			_, err := NewLine(f, quantity)
			return err
		}
		c.lines[i].quantity += quantity
		return nil
	}

	line, err := NewLine(f, quantity)
	if err != nil {
		return err
	}

	c.lines = append(c.lines, line)
	return nil
}

// RemoveItem deletes the line for the food id. Removing an absent line is a
// no-op.
func (c *Cart) RemoveItem(foodID kernel.ID) {
	if i := c.indexOf(foodID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// or less behaves as RemoveItem; a line is never kept at quantity zero.
// Setting quantity on an absent line is a no-op.
func (c *Cart) SetQuantity(foodID kernel.ID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(foodID)
		return
	}

	if i := c.indexOf(foodID); i >= 0 {
		c.lines[i].quantity = quantity
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Total returns the sum of unitPrice × quantity over all lines, 0 when empty.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Count returns the sum of quantities over all lines, 0 when empty.
func (c *Cart) Count() int {
	var count int
	for _, l := range c.lines {
		count += l.quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns the cart lines in insertion order. The returned slice is a
// copy; mutating it does not affect the cart.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) indexOf(foodID kernel.ID) int {
	for i, l := range c.lines {
		if l.foodID.IsEqual(foodID) {
			return i
		}
	}
	return -1
}
