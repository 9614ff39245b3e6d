// Package preparationrepo stores preparation snapshots in memory. Histories only grow:
// snapshots are appended and never replaced or removed.
package preparationrepo

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/preparation"
	"restaurant/internal/pkg/errs"
)

// Repository implements ports.PreparationRepository.
type Repository struct {
	lastID atomic.Uint64

	mu        sync.RWMutex
	histories map[kernel.UUID][]*preparation.Snapshot
	tracked   []kernel.UUID
}

// NewRepository returns an empty store whose first allocated id is 1.
func NewRepository() *Repository {
	return &Repository{
		histories: make(map[kernel.UUID][]*preparation.Snapshot),
	}
}

func (r *Repository) NextID() preparation.SnapshotID {
	return preparation.SnapshotID(r.lastID.Add(1))
}

func (r *Repository) Append(_ context.Context, snapshot *preparation.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	history, tracked := r.histories[snapshot.OrderID()]
	for _, s := range history {
		if s.ID() == snapshot.ID() {
			return errs.NewValueIsInvalidErrorWithCause(
				"snapshot",
				fmt.Errorf("snapshot %d already recorded for order %s", snapshot.ID(), snapshot.OrderID()),
			)
		}
	}
	if !tracked {
		r.tracked = append(r.tracked, snapshot.OrderID())
	}
	r.histories[snapshot.OrderID()] = append(history, snapshot)
	return nil
}

func (r *Repository) Latest(_ context.Context, orderID kernel.UUID) (*preparation.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest := latestOf(r.histories[orderID])
	if latest == nil {
		return nil, errs.NewObjectNotFoundError("preparation", orderID.String())
	}
	return latest, nil
}

func (r *Repository) History(_ context.Context, orderID kernel.UUID) ([]*preparation.Snapshot, error) {
	r.mu.RLock()
	history := slices.Clone(r.histories[orderID])
	r.mu.RUnlock()

	if history == nil {
		return []*preparation.Snapshot{}, nil
	}
	slices.SortStableFunc(history, preparation.CompareNewestFirst)
	return history, nil
}

// LatestPerOrder returns one snapshot per tracked order, orders listed in the
// sequence their histories were started.
func (r *Repository) LatestPerOrder(_ context.Context) ([]*preparation.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*preparation.Snapshot, 0, len(r.tracked))
	for _, orderID := range r.tracked {
		result = append(result, latestOf(r.histories[orderID]))
	}
	return result, nil
}

func latestOf(history []*preparation.Snapshot) *preparation.Snapshot {
	var latest *preparation.Snapshot
	for _, s := range history {
		if latest == nil || preparation.Newer(s, latest) {
			latest = s
		}
	}
	return latest
}
