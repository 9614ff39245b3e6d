package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrStartPreparationCommandIsNotConstructed = errors.New(
	"StartPreparationCommand must be created via NewStartPreparationCommand constructor",
)

// StartPreparationCommand seeds an order's preparation history with an all-false snapshot.
type StartPreparationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartPreparationCommand creates a request to seed the preparation history of orderID.
// Returns an error if the identifier is the zero value.
func NewStartPreparationCommand(orderID kernel.UUID) (StartPreparationCommand, error) {
	cmd := StartPreparationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return StartPreparationCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrStartPreparationCommandIsNotConstructed for a zero-value command.
func (c StartPreparationCommand) Validate() error {
	return c.guard.Validate(ErrStartPreparationCommandIsNotConstructed)
}

// OrderID returns the order whose preparation starts.
func (c StartPreparationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartPreparationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
