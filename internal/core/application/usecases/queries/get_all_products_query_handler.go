package queries

import (
	"context"

	"restaurant/internal/core/ports"
)

type GetAllProductsQueryHandler struct {
	products ports.ProductRepository
}

// NewGetAllProductsQueryHandler creates a handler reading from products.
func NewGetAllProductsQueryHandler(products ports.ProductRepository) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{products: products}
}

// Handle returns products in the sequence they were added to the menu.
func (h GetAllProductsQueryHandler) Handle(ctx context.Context, query GetAllProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products, err := h.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views, nil
}
