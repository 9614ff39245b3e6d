// Package payment records how an order was paid. There is no processing behind it:
// a Payment is written once when the order is placed.
package payment

import (
	"errors"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is immutable after construction.
type Payment struct {
	id          kernel.UUID
	method      string
	amount      kernel.Money
	processedAt time.Time

	isConstructed bool
}

// NewPayment requires a valid id and a non-blank method.
func NewPayment(id kernel.UUID, method string, amount kernel.Money, processedAt time.Time) (*Payment, error) {
	method = strings.TrimSpace(method)

	var methodErr error
	if method == "" {
		methodErr = errs.NewValueIsRequiredError("payment method")
	}
	if err := errors.Join(id.Validate(), methodErr); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		method:        method,
		amount:        amount,
		processedAt:   processedAt,
		isConstructed: true,
	}, nil
}

// Validate checks that the payment was built by NewPayment.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// Method returns the payment method, such as "Cash".
func (p *Payment) Method() string {
	return p.method
}

// Amount returns the amount charged.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// ProcessedAt returns when the payment was recorded.
func (p *Payment) ProcessedAt() time.Time {
	return p.processedAt
}
