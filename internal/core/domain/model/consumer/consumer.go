// Package consumer models the person placing an order.
package consumer

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrConsumerIsNotConstructed = errors.New("Consumer must be created via NewConsumer constructor")

// Consumer is created alongside every order; consumers are not deduplicated by name.
type Consumer struct {
	id            kernel.UUID
	name          string
	paymentMethod string

	isConstructed bool
}

// NewConsumer requires a non-blank name and payment method.
func NewConsumer(id kernel.UUID, name, paymentMethod string) (*Consumer, error) {
	name = strings.TrimSpace(name)
	paymentMethod = strings.TrimSpace(paymentMethod)

	var nameErr, methodErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("consumer name")
	}
	if paymentMethod == "" {
		methodErr = errs.NewValueIsRequiredError("payment method")
	}
	if err := errors.Join(id.Validate(), nameErr, methodErr); err != nil {
		return nil, err
	}

	return &Consumer{
		id:            id,
		name:          name,
		paymentMethod: paymentMethod,
		isConstructed: true,
	}, nil
}

// Validate checks that the consumer was built by NewConsumer.
func (c *Consumer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConsumerIsNotConstructed
	}
	return nil
}

// ID returns the consumer's unique identifier.
func (c *Consumer) ID() kernel.UUID {
	return c.id
}

// Name returns the name the order was placed under.
func (c *Consumer) Name() string {
	return c.name
}

// PaymentMethod returns the payment method the consumer chose.
func (c *Consumer) PaymentMethod() string {
	return c.paymentMethod
}
