// Package catalog holds the static product catalog and the query pipeline
// that derives filtered, sorted views of it.
package catalog

import (
	"fmt"
)

// Catalog is an immutable ordered sequence of products, the single source of
// truth for product identity. Built once at process start and never mutated.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// New validates identity uniqueness and builds the catalog index.
func New(products []Product) (*Catalog, error) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product at position %d has empty id", i)
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		byID[p.ID] = i
	}
	owned := make([]Product, len(products))
	copy(owned, products)
	return &Catalog{products: owned, byID: byID}, nil
}

// All returns the catalog in its defined order. The slice is a copy; callers
// cannot mutate catalog state through it.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// FindByID resolves a product identity against the catalog.
func (c *Catalog) FindByID(id string) (Product, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the distinct non-empty categories in first-seen order.
func (c *Catalog) Categories() []string {
	return c.distinct(func(p Product) string { return p.Category })
}

// Brands returns the distinct non-empty brands in first-seen order.
func (c *Catalog) Brands() []string {
	return c.distinct(func(p Product) string { return p.Brand })
}

func (c *Catalog) distinct(field func(Product) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		value := field(p)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
