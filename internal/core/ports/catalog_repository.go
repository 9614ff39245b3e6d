package ports

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
)

// ProductRepository stores menu products.
type ProductRepository interface {
	// Add stores a new product. Adding an id twice is an error.
	Add(ctx context.Context, product *catalog.Product) error

	// Get returns the product or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// GetAll returns every product, oldest first.
	GetAll(ctx context.Context) ([]*catalog.Product, error)
}
