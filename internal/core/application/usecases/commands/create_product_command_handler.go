package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
)

// CreateProductCommandHandler stores new menu items.
type CreateProductCommandHandler struct {
	products ports.ProductRepository
	clock    kernel.Clock
}

// NewCreateProductCommandHandler creates a handler that adds products to the menu.
func NewCreateProductCommandHandler(products ports.ProductRepository, clock kernel.Clock) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		products: products,
		clock:    clock,
	}
}

// Handle builds the product and returns it once stored.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*catalog.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Price(), cmd.Category(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = h.products.Add(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}
