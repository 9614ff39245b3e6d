package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/preparation"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateStationCommandIsNotConstructed = errors.New(
	"UpdateStationCommand must be created via NewUpdateStationCommand constructor",
)

// UpdateStationCommand reports that a kitchen station finished its part of an order.
//
// The station name is checked here, so an unknown station is rejected whatever state
// the order is in.
//
// Example:
//
//	cmd, err := NewUpdateStationCommand(orderID, "Grill")
//	if err != nil {
//	    return err // value is invalid: station (cause: invalid station: ...)
//	}
type UpdateStationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	station preparation.Station

	guard guard.ConstructorGuard
}

// NewUpdateStationCommand resolves the station name case-insensitively.
func NewUpdateStationCommand(orderID kernel.UUID, station string) (UpdateStationCommand, error) {
	cmd := UpdateStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStation(station),
		cmd.setOrderID(orderID),
	); err != nil {
		return UpdateStationCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrUpdateStationCommandIsNotConstructed for a zero-value command.
func (c UpdateStationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStationCommandIsNotConstructed)
}

// OrderID returns the order being prepared.
func (c UpdateStationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Station returns the station that finished its part.
func (c UpdateStationCommand) Station() preparation.Station {
	return c.station
}

func (c *UpdateStationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateStationCommand) setStation(name string) error {
	station, err := preparation.ParseStation(name)
	if err != nil {
		return err
	}

	c.station = station
	return nil
}
