// Package eventlog announces preparation snapshots through the structured logger.
// It is the publisher used when no message broker is configured.
package eventlog

import (
	"context"
	"log/slog"

	"restaurant/internal/core/domain/model/preparation"
)

// Publisher implements ports.PreparationEventPublisher.
type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "PreparationEvents")}
}

func (p *Publisher) Publish(ctx context.Context, snapshot *preparation.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	p.logger.InfoContext(ctx, string(snapshot.EventName()),
		slog.Uint64("snapshot_id", uint64(snapshot.ID())),
		slog.String("order_id", snapshot.OrderID().String()),
		slog.Group("stations",
			slog.Bool("grill", snapshot.Grill()),
			slog.Bool("salad", snapshot.Salad()),
			slog.Bool("fries", snapshot.Fries()),
			slog.Bool("refill", snapshot.Refill()),
		),
		slog.Bool("ready", snapshot.Ready()),
		slog.Time("timestamp", snapshot.Timestamp()),
	)
	return nil
}
