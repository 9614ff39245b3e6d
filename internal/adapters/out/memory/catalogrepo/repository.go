// Package catalogrepo provides the in-memory product repository and the default menu.
package catalogrepo

import (
	"context"
	"fmt"
	"sync"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// Repository implements ports.ProductRepository.
type Repository struct {
	mu       sync.RWMutex
	products map[kernel.UUID]*catalog.Product
	order    []kernel.UUID
}

// NewRepository returns an empty product repository.
func NewRepository() *Repository {
	return &Repository{
		products: make(map[kernel.UUID]*catalog.Product),
	}
}

// Add saves a new product.
func (r *Repository) Add(_ context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("product", fmt.Errorf("product %s already exists", product.ID()))
	}
	r.products[product.ID()] = product
	r.order = append(r.order, product.ID())
	return nil
}

// Get retrieves a product by ID.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id.String())
	}
	return product, nil
}

// GetAll returns products in the order they were added.
func (r *Repository) GetAll(_ context.Context) ([]*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*catalog.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.products[id])
	}
	return products, nil
}
