package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetPreparationHistoryQueryIsNotConstructed = errors.New(
	"GetPreparationHistoryQuery must be created via NewGetPreparationHistoryQuery constructor",
)

// GetPreparationHistoryQuery asks for every snapshot of an order, newest first.
type GetPreparationHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPreparationHistoryQuery creates a query for every snapshot of an order.
// Returns an error if the identifier is the zero value.
func NewGetPreparationHistoryQuery(orderID kernel.UUID) (GetPreparationHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPreparationHistoryQuery{}, err
	}
	return GetPreparationHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPreparationHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPreparationHistoryQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetPreparationHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}
