// Package orderrepo provides the in-memory order ledger: orders together with the
// consumer and payment records created alongside them.
package orderrepo

import (
	"context"
	"fmt"
	"sync"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// Repository implements ports.OrderRepository.
type Repository struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
	order  []kernel.UUID
}

// NewRepository returns an empty order ledger.
func NewRepository() *Repository {
	return &Repository{
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// Add saves a new order.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("order %s already exists", aggregate.ID()))
	}
	r.orders[aggregate.ID()] = aggregate
	r.order = append(r.order, aggregate.ID())
	return nil
}

// Get retrieves an order by ID.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

// GetAll returns orders in the order they were placed.
func (r *Repository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.order))
	for _, id := range r.order {
		orders = append(orders, r.orders[id])
	}
	return orders, nil
}
