// Package catalog holds the read-only product catalogue for the Lumina storefront.
// The catalogue is built once at startup and never mutated afterwards, so a
// *Catalog may be shared freely between the cart, the assistant and the UI.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one of the fixed product category labels.
type Category string

const (
	// All is the distinguished "no filter" value.
	All       Category = "All"
	Furniture Category = "Furniture"
	Lighting  Category = "Lighting"
	Decor     Category = "Decor"
	Wellness  Category = "Wellness"
)

// Categories returns the category tabs in display order, All first.
func Categories() []Category {
	return []Category{All, Furniture, Lighting, Decor, Wellness}
}

// IsProductCategory reports whether c may be assigned to a product.
// All is a filter value, not a product category.
func (c Category) IsProductCategory() bool {
	switch c {
	case Furniture, Lighting, Decor, Wellness:
		return true
	}
	return false
}

// ParseCategory matches s case-insensitively against the category enumeration.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Product is an immutable catalogue record. Price is in whole currency units.
type Product struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Price       int      `yaml:"price"`
	Category    Category `yaml:"category"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
}

var (
	ErrDuplicateID     = errors.New("duplicate product id")
	ErrNegativePrice   = errors.New("negative product price")
	ErrUnknownCategory = errors.New("unknown product category")
	ErrEmptyCatalog    = errors.New("catalog has no products")
)

// Catalog is an ordered, id-indexed product list.
type Catalog struct {
	products []Product
	byID     map[int]int
}

// New validates products and builds a Catalog preserving their order.
func New(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	copy(c.products, products)

	for i, p := range c.products {
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("%w: product %d has price %d", ErrNegativePrice, p.ID, p.Price)
		}
		if !p.Category.IsProductCategory() {
			return nil, fmt.Errorf("%w: product %d has category %q", ErrUnknownCategory, p.ID, p.Category)
		}
		c.byID[p.ID] = i
	}

	return c, nil
}

// MustNew is New for static definitions; it panics on invalid input.
func MustNew(products []Product) *Catalog {
	c, err := New(products)
	if err != nil {
		panic(err)
	}
	return c
}

// Products returns a copy of the catalogue in its original order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Lookup returns the product with the given id.
func (c *Catalog) Lookup(id int) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Filter returns the products visible under the selected category.
func (c *Catalog) Filter(selected Category) []Product {
	return FilterByCategory(c.Products(), selected)
}
