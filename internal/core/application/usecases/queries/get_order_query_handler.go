package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// GetOrderQueryHandler assembles order views from the ledger, the consumer and payment
// records, and the catalog.
type GetOrderQueryHandler struct {
	views orderViewBuilder
}

// NewGetOrderQueryHandler creates a handler that joins the order with its consumer,
// payment and products.
func NewGetOrderQueryHandler(
	orders ports.OrderRepository,
	consumers ports.ConsumerRepository,
	payments ports.PaymentRepository,
	products ports.ProductRepository,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		views: orderViewBuilder{
			orders:    orders,
			consumers: consumers,
			payments:  payments,
			products:  products,
		},
	}
}

// Handle fails with an errs.ObjectNotFoundError when the order is unknown.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.views.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	return h.views.build(ctx, o)
}

type orderViewBuilder struct {
	orders    ports.OrderRepository
	consumers ports.ConsumerRepository
	payments  ports.PaymentRepository
	products  ports.ProductRepository
}

func (b orderViewBuilder) build(ctx context.Context, o *order.Order) (OrderView, error) {
	c, err := b.consumers.Get(ctx, o.ConsumerID())
	if err != nil {
		return OrderView{}, err
	}
	p, err := b.payments.Get(ctx, o.PaymentID())
	if err != nil {
		return OrderView{}, err
	}

	productIDs := o.ProductIDs()
	items := make([]OrderLineItem, 0, len(productIDs))
	for _, id := range productIDs {
		product, err := b.products.Get(ctx, id)
		if err != nil {
			return OrderView{}, err
		}
		items = append(items, OrderLineItem{
			ProductID: product.ID(),
			Name:      product.Name(),
			Price:     product.Price(),
			Category:  product.Category(),
		})
	}

	return OrderView{
		ID:            o.ID(),
		ConsumerName:  c.Name(),
		Items:         items,
		TotalAmount:   o.TotalAmount(),
		PaymentMethod: p.Method(),
		CreatedAt:     o.CreatedAt(),
		Status:        o.Status(),
	}, nil
}
