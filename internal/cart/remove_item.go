package cart

// RemoveItem deletes the line for productID. Removing an absent id is a no-op.
func (c *Cart) RemoveItem(productID int) {
	i, ok := c.index[productID]
	if !ok {
		return
	}

	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, productID)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].Product.ID] = j
	}
}
