package catalog

import "strings"

// FilterByCategory returns products unchanged when selected is All, otherwise
// the order-preserving subsequence whose category equals selected exactly.
// An unknown category yields an empty slice.
func FilterByCategory(products []Product, selected Category) []Product {
	if selected == All {
		return products
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == selected {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products whose name or description contains query,
// ignoring case. An empty query matches everything.
func Search(products []Product, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	var out []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}
