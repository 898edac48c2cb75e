package cart

import (
	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/pkg/errs"
)

// Product is the catalog view a line is built from when an item is added.
type Product struct {
	ID        kernel.UUID
	Name      string
	UnitPrice kernel.Money
	ImageRef  string
}

// Cart holds the line items of one customer session before order placement.
// It is a pure in-memory container owned by a single session: it never
// touches the network or persistence, and it is cleared on successful order
// placement or on explicit request.
//
// Every mutation notifies the subscribers registered via Subscribe with the
// new total item count, so dependent displays (a cart badge, a totals panel)
// stay consistent without polling.
//
// Cart is not safe for concurrent use; a session owns exactly one goroutine's
// view of it.
type Cart struct {
	lines       []Line
	subscribers []func(itemCount int)
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Subscribe registers a callback invoked after every mutation with the
// cart's total item count.
func (c *Cart) Subscribe(fn func(itemCount int)) {
	if fn == nil {
		return
	}
	c.subscribers = append(c.subscribers, fn)
}

// Add puts one unit of product into the cart for the given merchant.
// Adding a product that is already present increments its quantity instead
// of creating a duplicate line.
func (c *Cart) Add(product Product, merchantID kernel.UUID, merchantName string) error {
	for i := range c.lines {
		if c.lines[i].productID.IsEqual(product.ID) {
			c.lines[i].quantity++
			c.notify()
			return nil
		}
	}

	line, err := NewLine(product.ID, merchantID, merchantName, product.Name, product.UnitPrice, 1, product.ImageRef)
	if err != nil {
		return err
	}

	c.lines = append(c.lines, line)
	c.notify()
	return nil
}

// ChangeQuantity applies delta to the quantity of the line holding productID.
// A delta that would bring the quantity to zero or below removes the line
// entirely; a line with non-positive quantity never exists.
func (c *Cart) ChangeQuantity(productID kernel.UUID, delta int) error {
	for i := range c.lines {
		if !c.lines[i].productID.IsEqual(productID) {
			continue
		}

		if c.lines[i].quantity+delta <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].quantity += delta
		}
		c.notify()
		return nil
	}

	return errs.NewObjectNotFoundError("productId", productID.String())
}

// Remove deletes the line holding productID. Removing an absent product is
// a no-op, matching the storefront's idempotent remove button.
func (c *Cart) Remove(productID kernel.UUID) {
	for i := range c.lines {
		if c.lines[i].productID.IsEqual(productID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.notify()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	if len(c.lines) == 0 {
		return
	}
	c.lines = nil
	c.notify()
}

// Snapshot returns a copy of the lines in the order products were first
// added. Mutating the returned slice does not affect the cart.
func (c *Cart) Snapshot() []Line {
	snapshot := make([]Line, len(c.lines))
	copy(snapshot, c.lines)
	return snapshot
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.lines {
		count += c.lines[i].quantity
	}
	return count
}

func (c *Cart) notify() {
	count := c.ItemCount()
	for _, fn := range c.subscribers {
		fn(count)
	}
}
