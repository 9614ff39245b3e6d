package queries

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/preparation"
)

// SnapshotView is the read model of a preparation snapshot.
type SnapshotView struct {
	ID        preparation.SnapshotID
	OrderID   kernel.UUID
	Grill     bool
	Salad     bool
	Fries     bool
	Refill    bool
	Ready     bool
	Timestamp time.Time
}

// NewSnapshotView copies the snapshot into its read model.
func NewSnapshotView(s *preparation.Snapshot) SnapshotView {
	return SnapshotView{
		ID:        s.ID(),
		OrderID:   s.OrderID(),
		Grill:     s.Grill(),
		Salad:     s.Salad(),
		Fries:     s.Fries(),
		Refill:    s.Refill(),
		Ready:     s.Ready(),
		Timestamp: s.Timestamp(),
	}
}
