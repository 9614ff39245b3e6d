package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

type IsOrderReadyQueryHandler struct {
	snapshots ports.PreparationRepository
}

// NewIsOrderReadyQueryHandler creates a handler reading from snapshots.
func NewIsOrderReadyQueryHandler(snapshots ports.PreparationRepository) IsOrderReadyQueryHandler {
	return IsOrderReadyQueryHandler{snapshots: snapshots}
}

// Handle returns the ready flag of the current snapshot, or false when there is none.
func (h IsOrderReadyQueryHandler) Handle(ctx context.Context, query IsOrderReadyQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	latest, err := h.snapshots.Latest(ctx, query.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return latest.Ready(), nil
}
