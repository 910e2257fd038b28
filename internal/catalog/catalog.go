// Package catalog loads the product catalog and answers category queries over it.
package catalog

import "github.com/Veraticus/prodchart/internal/model"

// CategoryCount is the number of products in one category.
type CategoryCount struct {
	Category string
	Count    int
}

// Catalog is an immutable view over a fetched product list.
type Catalog struct {
	byID       map[int]model.Product
	products   []model.Product
	categories []string
}

// New builds a catalog. Categories are recorded in first-seen order. When an
// id repeats, Lookup returns the first product with it.
func New(products []model.Product) *Catalog {
	c := &Catalog{
		products: make([]model.Product, len(products)),
		byID:     make(map[int]model.Product, len(products)),
	}
	copy(c.products, products)

	seen := make(map[string]struct{})
	for _, p := range c.products {
		if _, ok := c.byID[p.ID]; !ok {
			c.byID[p.ID] = p
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		c.categories = append(c.categories, p.Category)
	}

	return c
}

// Products returns a copy of every product in fetch order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// HasCategory reports whether any product belongs to category.
func (c *Catalog) HasCategory(category string) bool {
	for _, cat := range c.categories {
		if cat == category {
			return true
		}
	}
	return false
}

// Filter returns the products of a category in fetch order.
func (c *Catalog) Filter(category string) []model.Product {
	var out []model.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Lookup finds a product by id.
func (c *Catalog) Lookup(id int) (model.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Counts recounts products per category, in category order.
func (c *Catalog) Counts() []CategoryCount {
	counts := make([]CategoryCount, 0, len(c.categories))
	for _, cat := range c.categories {
		n := 0
		for _, p := range c.products {
			if p.Category == cat {
				n++
			}
		}
		counts = append(counts, CategoryCount{Category: cat, Count: n})
	}
	return counts
}
