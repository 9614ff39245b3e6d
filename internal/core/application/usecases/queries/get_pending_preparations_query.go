package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/preparation"
	"restaurant/internal/pkg/guard"
)

var ErrGetPendingPreparationsQueryIsNotConstructed = errors.New(
	"GetPendingPreparationsQuery must be created via NewGetPendingPreparationsQuery constructor",
)

// GetPendingPreparationsQuery lists the kitchen backlog: orders whose current snapshot
// is not ready.
//
// Example:
//
//	backlog, err := handler.Handle(ctx, NewGetPendingPreparationsQuery())
//	if err != nil {
//	    return err
//	}
//	for _, item := range backlog {
//	    fmt.Printf("%s waiting on %v since %s\n", item.OrderID, item.Missing, item.UpdatedAt)
//	}
type GetPendingPreparationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingPreparationsQuery creates a query for the kitchen backlog.
func NewGetPendingPreparationsQuery() GetPendingPreparationsQuery {
	return GetPendingPreparationsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingPreparationsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingPreparationsQueryIsNotConstructed)
}

// GetPendingPreparationsQueryResponse is one backlog entry. UpdatedAt is the timestamp of
// the current snapshot; Missing lists the stations still to report, in canonical order.
type GetPendingPreparationsQueryResponse struct {
	OrderID    kernel.UUID
	SnapshotID preparation.SnapshotID
	UpdatedAt  time.Time
	Missing    []preparation.Station
}
