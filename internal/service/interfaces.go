// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/prodchart/internal/model"
)

// CatalogSource defines the contract for fetching the product catalog.
type CatalogSource interface {
	// FetchProducts performs a single read of the full product collection.
	// Any failure is total; no partial catalog is returned.
	FetchProducts(ctx context.Context) ([]model.Product, error)
}

// ValueSource produces the report value charted for a product.
type ValueSource interface {
	Value(product model.Product) float64
}

// ValueFunc adapts a plain function to ValueSource.
type ValueFunc func(product model.Product) float64

// Value implements ValueSource.
func (f ValueFunc) Value(product model.Product) float64 {
	return f(product)
}
