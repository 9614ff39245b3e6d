package queries

import (
	"context"

	"restaurant/internal/core/ports"
)

type GetPreparationHistoryQueryHandler struct {
	snapshots ports.PreparationRepository
}

// NewGetPreparationHistoryQueryHandler creates a handler reading from snapshots.
func NewGetPreparationHistoryQueryHandler(snapshots ports.PreparationRepository) GetPreparationHistoryQueryHandler {
	return GetPreparationHistoryQueryHandler{snapshots: snapshots}
}

// Handle returns the history newest first; an order without snapshots yields an empty slice.
func (h GetPreparationHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetPreparationHistoryQuery,
) ([]SnapshotView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history, err := h.snapshots.History(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	views := make([]SnapshotView, 0, len(history))
	for _, s := range history {
		views = append(views, NewSnapshotView(s))
	}
	return views, nil
}
