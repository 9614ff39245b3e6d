package commands

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/model/preparation"
	"restaurant/internal/core/ports"
)

// eventPublisher announces appended snapshots. The snapshot is already part of the
// history when publishing fails, so the failure is logged and swallowed.
type eventPublisher struct {
	publisher ports.PreparationEventPublisher
	logger    *slog.Logger
}

func newEventPublisher(publisher ports.PreparationEventPublisher, logger *slog.Logger) eventPublisher {
	return eventPublisher{publisher: publisher, logger: logger}
}

func (p eventPublisher) publish(ctx context.Context, snapshot *preparation.Snapshot) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(ctx, snapshot); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish preparation event",
			"order_id", snapshot.OrderID().String(),
			"snapshot_id", uint64(snapshot.ID()),
			"error", err,
		)
	}
}

// notBefore keeps timestamps of one order's history from going backwards when the
// wall clock is adjusted.
func notBefore(at time.Time, latest *preparation.Snapshot) time.Time {
	if at.Before(latest.Timestamp()) {
		return latest.Timestamp()
	}
	return at
}
