package order

import (
	"errors"
	"slices"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotReady is returned when delivery is attempted before every kitchen
	// station reported completion. Callers may retry after further station updates.
	ErrOrderIsNotReady = errors.New("Order is not ready yet. Please complete all preparation stations.")
)

// Order is the ledger record of a placed order.
//
// Order follows these invariants:
//   - Must have valid order, consumer and payment identifiers
//   - Must reference at least one product
//   - Is immutable after construction; ProductIDs returns a copy
type Order struct {
	id          kernel.UUID
	consumerID  kernel.UUID
	productIDs  []kernel.UUID
	totalAmount kernel.Money
	paymentID   kernel.UUID
	createdAt   time.Time
	status      Status

	isConstructed bool
}

// NewOrder creates a Pending order.
//
// Example:
//
//	o, err := order.NewOrder(orderID, consumer.ID(), productIDs, total, payment.ID(), clock.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id kernel.UUID,
	consumerID kernel.UUID,
	productIDs []kernel.UUID,
	totalAmount kernel.Money,
	paymentID kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		totalAmount:   totalAmount,
		createdAt:     createdAt,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setConsumerID(consumerID),
		o.setProductIDs(productIDs),
		o.setPaymentID(paymentID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ConsumerID returns the consumer who placed the order.
func (o *Order) ConsumerID() kernel.UUID {
	return o.consumerID
}

// ProductIDs returns the ordered product ids. The slice is a copy.
func (o *Order) ProductIDs() []kernel.UUID {
	return slices.Clone(o.productIDs)
}

// TotalAmount returns the sum of all line item prices.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// PaymentID returns the payment recorded for the order.
func (o *Order) PaymentID() kernel.UUID {
	return o.paymentID
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the order status.
func (o *Order) Status() Status {
	return o.status
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setConsumerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("consumer id", err)
	}
	o.consumerID = id
	return nil
}

func (o *Order) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("payment id", err)
	}
	o.paymentID = id
	return nil
}

func (o *Order) setProductIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("product ids", errors.New("at least one product is required"))
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("product ids", err)
		}
	}
	o.productIDs = slices.Clone(ids)
	return nil
}
