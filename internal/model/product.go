// Package model holds the domain types shared across packages.
package model

// Product is a single catalog entry as returned by the catalog API.
type Product struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	ID       int    `json:"id"`
}

// ProductIDs returns the ids of products in order.
func ProductIDs(products []Product) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
