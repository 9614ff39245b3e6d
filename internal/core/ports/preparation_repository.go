package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/preparation"
)

// PreparationRepository is the append-only store of preparation snapshots.
//
// The store owns snapshot identity: NextID hands out ids that increase across all
// orders and are unique within the store instance.
type PreparationRepository interface {
	// NextID allocates the id for the next snapshot.
	NextID() preparation.SnapshotID

	// Append adds a snapshot to its order's history. Snapshots are never replaced.
	Append(ctx context.Context, snapshot *preparation.Snapshot) error

	// Latest returns the newest snapshot of the order (see preparation.Newer),
	// or an errs.ObjectNotFoundError when the order has no history.
	Latest(ctx context.Context, orderID kernel.UUID) (*preparation.Snapshot, error)

	// History returns all snapshots of the order, newest first. It is empty, not an
	// error, when the order has no history.
	History(ctx context.Context, orderID kernel.UUID) ([]*preparation.Snapshot, error)

	// LatestPerOrder returns the newest snapshot of every order with history.
	LatestPerOrder(ctx context.Context) ([]*preparation.Snapshot, error)
}

// PreparationEventPublisher announces appended snapshots to interested parties
// (kitchen displays, notification services).
type PreparationEventPublisher interface {
	Publish(ctx context.Context, snapshot *preparation.Snapshot) error
}
