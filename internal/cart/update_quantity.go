package cart

// UpdateQuantity adjusts the quantity of productID by delta, clamped so the
// line never drops below 1. Decrementing never removes a line; use RemoveItem
// for that. Absent ids are a no-op.
func (c *Cart) UpdateQuantity(productID, delta int) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	c.lines[i].Quantity = max(1, c.lines[i].Quantity+delta)
}
