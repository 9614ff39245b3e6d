package ports

import (
	"context"

	"restaurant/internal/core/domain/model/consumer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
)

// OrderRepository is the order ledger. Get doubles as the order-resolution capability
// the preparation engine relies on to reject unknown orders.
type OrderRepository interface {
	// Add stores a new order. Orders are immutable, so there is no Update.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// ConsumerRepository stores the consumers created with orders.
type ConsumerRepository interface {
	Add(ctx context.Context, c *consumer.Consumer) error
	Get(ctx context.Context, id kernel.UUID) (*consumer.Consumer, error)
}

// PaymentRepository stores payment records.
type PaymentRepository interface {
	Add(ctx context.Context, p *payment.Payment) error
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)
}
