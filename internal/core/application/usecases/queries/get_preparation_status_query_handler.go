package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// GetPreparationStatusQueryHandler reads the current snapshot of an order.
//
// Example:
//
//	query, _ := NewGetPreparationStatusQuery(orderID)
//	status, found, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if !found {
//	    fmt.Println("preparation not started")
//	}
type GetPreparationStatusQueryHandler struct {
	snapshots ports.PreparationRepository
}

// NewGetPreparationStatusQueryHandler creates a handler reading from snapshots.
func NewGetPreparationStatusQueryHandler(snapshots ports.PreparationRepository) GetPreparationStatusQueryHandler {
	return GetPreparationStatusQueryHandler{snapshots: snapshots}
}

// Handle reports found=false for orders without history, including orders that do not
// exist. Absence is not an error.
func (h GetPreparationStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPreparationStatusQuery,
) (SnapshotView, bool, error) {
	if err := query.Validate(); err != nil {
		return SnapshotView{}, false, err
	}

	latest, err := h.snapshots.Latest(ctx, query.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return SnapshotView{}, false, nil
	case err != nil:
		return SnapshotView{}, false, err
	}

	return NewSnapshotView(latest), true, nil
}
