package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/consumer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/core/ports"
)

// CreateOrderCommandHandler records a new order in the ledger.
//
// Every product must exist in the catalog; the total is the sum of the line item prices,
// duplicates included. The consumer and payment records are written before the order.
// The writes are independent: a failure part way leaves the earlier records in place.
type CreateOrderCommandHandler struct {
	products  ports.ProductRepository
	consumers ports.ConsumerRepository
	payments  ports.PaymentRepository
	orders    ports.OrderRepository
	clock     kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler that prices orders from products and
// stores the consumer, payment and order records.
func NewCreateOrderCommandHandler(
	products ports.ProductRepository,
	consumers ports.ConsumerRepository,
	payments ports.PaymentRepository,
	orders ports.OrderRepository,
	clock kernel.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		products:  products,
		consumers: consumers,
		payments:  payments,
		orders:    orders,
		clock:     clock,
	}
}

// Handle validates the products, then stores the consumer, the payment and the order.
// An unknown product fails with an errs.ObjectNotFoundError before anything is written.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	productIDs := cmd.ProductIDs()
	lineItems := make([]*catalog.Product, 0, len(productIDs))
	for _, id := range productIDs {
		product, err := h.products.Get(ctx, id)
		if err != nil {
			return err
		}
		lineItems = append(lineItems, product)
	}

	total := kernel.ZeroMoney()
	for _, product := range lineItems {
		total = total.Add(product.Price())
	}

	now := h.clock.Now()

	c, err := consumer.NewConsumer(kernel.NewUUID(), cmd.ConsumerName(), cmd.PaymentMethod())
	if err != nil {
		return err
	}
	p, err := payment.NewPayment(kernel.NewUUID(), cmd.PaymentMethod(), total, now)
	if err != nil {
		return err
	}
	o, err := order.NewOrder(cmd.OrderID(), c.ID(), productIDs, total, p.ID(), now)
	if err != nil {
		return err
	}

	if err = h.consumers.Add(ctx, c); err != nil {
		return err
	}
	if err = h.payments.Add(ctx, p); err != nil {
		return err
	}
	return h.orders.Add(ctx, o)
}
