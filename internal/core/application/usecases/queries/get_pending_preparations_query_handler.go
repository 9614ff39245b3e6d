package queries

import (
	"cmp"
	"context"
	"slices"

	"restaurant/internal/core/ports"
)

// GetPendingPreparationsQueryHandler builds the kitchen backlog from the current snapshot
// of every tracked order. The entry that waited longest since its last update comes first.
type GetPendingPreparationsQueryHandler struct {
	snapshots ports.PreparationRepository
}

// NewGetPendingPreparationsQueryHandler creates a handler reading from snapshots.
func NewGetPendingPreparationsQueryHandler(snapshots ports.PreparationRepository) GetPendingPreparationsQueryHandler {
	return GetPendingPreparationsQueryHandler{snapshots: snapshots}
}

func (h GetPendingPreparationsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingPreparationsQuery,
) ([]GetPendingPreparationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	current, err := h.snapshots.LatestPerOrder(ctx)
	if err != nil {
		return nil, err
	}

	backlog := make([]GetPendingPreparationsQueryResponse, 0, len(current))
	for _, s := range current {
		if s.Ready() {
			continue
		}
		backlog = append(backlog, GetPendingPreparationsQueryResponse{
			OrderID:    s.OrderID(),
			SnapshotID: s.ID(),
			UpdatedAt:  s.Timestamp(),
			Missing:    s.Missing(),
		})
	}

	slices.SortFunc(backlog, func(a, b GetPendingPreparationsQueryResponse) int {
		if c := a.UpdatedAt.Compare(b.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.SnapshotID, b.SnapshotID)
	})
	return backlog, nil
}
