package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrIsOrderReadyQueryIsNotConstructed = errors.New(
	"IsOrderReadyQuery must be created via NewIsOrderReadyQuery constructor",
)

// IsOrderReadyQuery asks whether every station finished an order.
type IsOrderReadyQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIsOrderReadyQuery creates a readiness query for orderID.
// Returns an error if the identifier is the zero value.
func NewIsOrderReadyQuery(orderID kernel.UUID) (IsOrderReadyQuery, error) {
	if err := orderID.Validate(); err != nil {
		return IsOrderReadyQuery{}, err
	}
	return IsOrderReadyQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q IsOrderReadyQuery) Validate() error {
	return q.guard.Validate(ErrIsOrderReadyQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q IsOrderReadyQuery) OrderID() kernel.UUID {
	return q.orderID
}
