package commands

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/preparation"
	"restaurant/internal/core/ports"
)

// StartPreparationCommandHandler appends the seed snapshot for an existing order.
//
// Calling it twice appends two seeds. The latest one becomes the current status, which
// resets every station of the order.
//
// Example:
//
//	handler := NewStartPreparationCommandHandler(orders, snapshots, publisher, locker, clock, logger)
//	cmd, _ := NewStartPreparationCommand(orderID)
//
//	seed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to start preparation: %w", err)
//	}
//	fmt.Println(seed.Ready()) // false
type StartPreparationCommandHandler struct {
	orders    ports.OrderRepository
	snapshots ports.PreparationRepository
	events    eventPublisher
	locker    OrderLocker
	clock     kernel.Clock
}

// NewStartPreparationCommandHandler creates the handler. locker must be shared with the
// UpdateStationCommandHandler so both append under the same per-order lock.
func NewStartPreparationCommandHandler(
	orders ports.OrderRepository,
	snapshots ports.PreparationRepository,
	publisher ports.PreparationEventPublisher,
	locker OrderLocker,
	clock kernel.Clock,
	logger *slog.Logger,
) StartPreparationCommandHandler {
	return StartPreparationCommandHandler{
		orders:    orders,
		snapshots: snapshots,
		events:    newEventPublisher(publisher, logger.With("component", "StartPreparationCommandHandler")),
		locker:    locker,
		clock:     clock,
	}
}

// Handle fails with an errs.ObjectNotFoundError when the order is not in the ledger.
func (h StartPreparationCommandHandler) Handle(
	ctx context.Context,
	cmd StartPreparationCommand,
) (*preparation.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.orders.Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	unlock := h.locker.Lock(cmd.OrderID())
	defer unlock()

	at := h.clock.Now()
	if latest, err := h.snapshots.Latest(ctx, cmd.OrderID()); err == nil {
		at = notBefore(at, latest)
	}

	seed, err := preparation.NewSeedSnapshot(h.snapshots.NextID(), cmd.OrderID(), at)
	if err != nil {
		return nil, err
	}
	if err = h.snapshots.Append(ctx, seed); err != nil {
		return nil, err
	}

	h.events.publish(ctx, seed)
	return seed, nil
}
