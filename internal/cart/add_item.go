package cart

import "fmt"

// AddItem adds one unit of productID. An existing line is incremented in
// place; otherwise a new line with quantity 1 is appended. Observers are
// notified with the resulting snapshot, which is also returned.
func (c *Cart) AddItem(productID int) (Snapshot, error) {
	product, ok := c.catalog.Lookup(productID)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrUnknownProduct, productID)
	}

	if i, exists := c.index[productID]; exists {
		c.lines[i].Quantity++
	} else {
		c.index[productID] = len(c.lines)
		c.lines = append(c.lines, Line{Product: product, Quantity: 1})
	}

	snap := c.Snapshot()
	for _, o := range c.observers {
		o(snap)
	}
	return snap, nil
}
