package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetPreparationStatusQueryIsNotConstructed = errors.New(
	"GetPreparationStatusQuery must be created via NewGetPreparationStatusQuery constructor",
)

// GetPreparationStatusQuery asks for the current snapshot of an order.
type GetPreparationStatusQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPreparationStatusQuery creates a query for the current snapshot of an order.
// Returns an error if the identifier is the zero value.
func NewGetPreparationStatusQuery(orderID kernel.UUID) (GetPreparationStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPreparationStatusQuery{}, err
	}
	return GetPreparationStatusQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPreparationStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPreparationStatusQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetPreparationStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}
