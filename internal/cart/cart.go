// Package cart is the in-memory shopping cart for a single storefront session.
//
// The cart keeps one line per product id in first-add order. Lines are
// modified in place, so a product keeps its position however often its
// quantity changes. A cart is owned by one session and is not safe for
// concurrent use.
package cart

import (
	"lumina/internal/catalog"
)

// Line is a product together with the quantity held in the cart.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Total returns price times quantity for the line.
func (l Line) Total() int {
	return l.Product.Price * l.Quantity
}

// Snapshot is an immutable copy of the cart contents.
type Snapshot struct {
	Lines     []Line
	ItemCount int
	Subtotal  int
}

// Observer receives the cart snapshot after a product was added.
// The storefront uses this as its hint to open the cart drawer.
type Observer func(Snapshot)

// Cart holds the ordered cart lines for one session.
type Cart struct {
	catalog   *catalog.Catalog
	lines     []Line
	index     map[int]int // productID -> position in lines
	observers []Observer
}

// New creates an empty cart backed by the given catalogue.
func New(c *catalog.Catalog) *Cart {
	return &Cart{
		catalog: c,
		index:   make(map[int]int),
	}
}

// OnAdd registers an observer called after every successful AddItem.
func (c *Cart) OnAdd(o Observer) {
	c.observers = append(c.observers, o)
}

// Lines returns a copy of the cart lines in first-add order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Snapshot returns a copy of the lines with their derived totals.
func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		Lines:     c.Lines(),
		ItemCount: c.TotalItemCount(),
		Subtotal:  c.Subtotal(),
	}
}

// Quantity returns the quantity held for productID, or 0 if absent.
func (c *Cart) Quantity(productID int) int {
	i, ok := c.index[productID]
	if !ok {
		return 0
	}
	return c.lines[i].Quantity
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// TotalItemCount returns the sum of quantities across all lines.
func (c *Cart) TotalItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal returns the sum of price times quantity across all lines.
// No tax or shipping is applied.
func (c *Cart) Subtotal() int {
	total := 0
	for _, l := range c.lines {
		total += l.Total()
	}
	return total
}
