package commands

import (
	"context"
	"errors"
	"log/slog"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/preparation"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// UpdateStationCommandHandler appends the snapshot derived from the order's current one
// with the reported station marked done.
//
// When the order has no history yet the FirstUpdatePolicy applies: SeedOnly appends and
// returns only the all-false seed, SeedAndApply appends the seed and then the applied
// snapshot. Updates of one order are serialized through the OrderLocker, so concurrent
// reports for the same order all end up in the current snapshot.
//
// Example:
//
//	handler := NewUpdateStationCommandHandler(orders, snapshots, publisher, locker, clock,
//	    preparation.SeedOnly, logger)
//	cmd, _ := NewUpdateStationCommand(orderID, "fries")
//
//	snapshot, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if snapshot.Ready() {
//	    fmt.Println("order is ready for delivery")
//	}
type UpdateStationCommandHandler struct {
	orders    ports.OrderRepository
	snapshots ports.PreparationRepository
	events    eventPublisher
	locker    OrderLocker
	clock     kernel.Clock
	policy    preparation.FirstUpdatePolicy
	logger    *slog.Logger
}

// NewUpdateStationCommandHandler creates the handler. policy decides what the first
// update on an order without history does.
func NewUpdateStationCommandHandler(
	orders ports.OrderRepository,
	snapshots ports.PreparationRepository,
	publisher ports.PreparationEventPublisher,
	locker OrderLocker,
	clock kernel.Clock,
	policy preparation.FirstUpdatePolicy,
	logger *slog.Logger,
) UpdateStationCommandHandler {
	logger = logger.With("component", "UpdateStationCommandHandler")
	return UpdateStationCommandHandler{
		orders:    orders,
		snapshots: snapshots,
		events:    newEventPublisher(publisher, logger),
		locker:    locker,
		clock:     clock,
		policy:    policy,
		logger:    logger,
	}
}

// Handle returns the snapshot that is current for the order once the call completes.
// An order missing from the ledger fails with an errs.ObjectNotFoundError.
func (h UpdateStationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateStationCommand,
) (*preparation.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.orders.Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	unlock := h.locker.Lock(cmd.OrderID())
	defer unlock()

	latest, err := h.snapshots.Latest(ctx, cmd.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return h.handleFirstUpdate(ctx, cmd)
	case err != nil:
		return nil, err
	}

	next, err := latest.Advance(h.snapshots.NextID(), cmd.Station(), notBefore(h.clock.Now(), latest))
	if err != nil {
		return nil, err
	}
	if err = h.append(ctx, next); err != nil {
		return nil, err
	}

	h.logger.DebugContext(ctx, "station completed",
		"order_id", cmd.OrderID().String(),
		"station", cmd.Station().String(),
		"ready", next.Ready(),
	)
	return next, nil
}

func (h UpdateStationCommandHandler) handleFirstUpdate(
	ctx context.Context,
	cmd UpdateStationCommand,
) (*preparation.Snapshot, error) {
	at := h.clock.Now()
	seed, err := preparation.NewSeedSnapshot(h.snapshots.NextID(), cmd.OrderID(), at)
	if err != nil {
		return nil, err
	}
	if err = h.append(ctx, seed); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "station update on order without preparation history",
		"order_id", cmd.OrderID().String(),
		"station", cmd.Station().String(),
		"policy", h.policy.String(),
	)

	if h.policy != preparation.SeedAndApply {
		return seed, nil
	}

	applied, err := seed.Advance(h.snapshots.NextID(), cmd.Station(), at)
	if err != nil {
		return nil, err
	}
	if err = h.append(ctx, applied); err != nil {
		return nil, err
	}
	return applied, nil
}

func (h UpdateStationCommandHandler) append(ctx context.Context, snapshot *preparation.Snapshot) error {
	if err := h.snapshots.Append(ctx, snapshot); err != nil {
		return err
	}
	h.events.publish(ctx, snapshot)
	return nil
}
