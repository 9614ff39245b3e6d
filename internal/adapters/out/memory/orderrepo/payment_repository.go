package orderrepo

import (
	"context"
	"fmt"
	"sync"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/pkg/errs"
)

// PaymentRepository implements ports.PaymentRepository.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[kernel.UUID]*payment.Payment
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[kernel.UUID]*payment.Payment),
	}
}

func (r *PaymentRepository) Add(_ context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.payments[p.ID()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("payment", fmt.Errorf("payment %s already exists", p.ID()))
	}
	r.payments[p.ID()] = p
	return nil
}

func (r *PaymentRepository) Get(_ context.Context, id kernel.UUID) (*payment.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("payment", id.String())
	}
	return p, nil
}
