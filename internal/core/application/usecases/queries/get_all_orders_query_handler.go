package queries

import (
	"context"

	"restaurant/internal/core/ports"
)

type GetAllOrdersQueryHandler struct {
	views orderViewBuilder
}

// NewGetAllOrdersQueryHandler creates a handler that builds order views from the stores.
func NewGetAllOrdersQueryHandler(
	orders ports.OrderRepository,
	consumers ports.ConsumerRepository,
	payments ports.PaymentRepository,
	products ports.ProductRepository,
) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{
		views: orderViewBuilder{
			orders:    orders,
			consumers: consumers,
			payments:  payments,
			products:  products,
		},
	}
}

// Handle returns an empty slice when no order was placed yet.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.views.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		view, err := h.views.build(ctx, o)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
