package preparation

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrSnapshotIsNotConstructed is returned when a Snapshot was not built by
// NewSeedSnapshot or Advance.
var ErrSnapshotIsNotConstructed = errors.New("Snapshot must be created via NewSeedSnapshot or Advance")

// SnapshotID identifies a snapshot. Ids are allocated by the snapshot store,
// increase with every snapshot of any order and are never reused.
type SnapshotID uint64

// Snapshot is the kitchen state of one order at one instant. It is immutable.
type Snapshot struct {
	id        SnapshotID
	orderID   kernel.UUID
	done      stationSet
	timestamp time.Time

	isConstructed bool
}

// NewSeedSnapshot builds the first snapshot of an order: no station done, not ready.
func NewSeedSnapshot(id SnapshotID, orderID kernel.UUID, at time.Time) (*Snapshot, error) {
	return newSnapshot(id, orderID, 0, at)
}

// Advance derives the next snapshot: the receiver's flags copied forward with station
// forced true. Advancing an already-done station keeps every flag as it was.
// The receiver is not modified.
//
// Example:
//
//	latest, _ := repo.Latest(ctx, orderID)
//	next, err := latest.Advance(repo.NextID(), preparation.Grill, clock.Now())
func (s *Snapshot) Advance(id SnapshotID, station Station, at time.Time) (*Snapshot, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := station.Validate(); err != nil {
		return nil, err
	}
	return newSnapshot(id, s.orderID, s.done.with(station), at)
}

func newSnapshot(id SnapshotID, orderID kernel.UUID, done stationSet, at time.Time) (*Snapshot, error) {
	var idErr error
	if id == 0 {
		idErr = errs.NewValueIsRequiredError("snapshot id")
	}
	if err := errors.Join(idErr, orderID.Validate()); err != nil {
		return nil, err
	}

	return &Snapshot{
		id:            id,
		orderID:       orderID,
		done:          done,
		timestamp:     at,
		isConstructed: true,
	}, nil
}

// Validate ensures the snapshot was built through a constructor.
func (s *Snapshot) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSnapshotIsNotConstructed
	}
	return nil
}

// ID returns the store-allocated snapshot identifier.
func (s *Snapshot) ID() SnapshotID {
	return s.id
}

// OrderID returns the order this snapshot belongs to.
func (s *Snapshot) OrderID() kernel.UUID {
	return s.orderID
}

// Timestamp returns when the snapshot was appended.
func (s *Snapshot) Timestamp() time.Time {
	return s.timestamp
}

// Grill reports whether the grill station has finished.
func (s *Snapshot) Grill() bool {
	return s.done.has(Grill)
}

// Salad reports whether the salad station has finished.
func (s *Snapshot) Salad() bool {
	return s.done.has(Salad)
}

// Fries reports whether the fries station has finished.
func (s *Snapshot) Fries() bool {
	return s.done.has(Fries)
}

// Refill reports whether the drink refill has been served.
func (s *Snapshot) Refill() bool {
	return s.done.has(Refill)
}

// IsDone reports whether station had completed when the snapshot was taken.
func (s *Snapshot) IsDone(station Station) bool {
	return station.Validate() == nil && s.done.has(station)
}

// Ready is true iff all four stations are done.
func (s *Snapshot) Ready() bool {
	return s.done == allStations
}

// Missing lists the stations not yet done, in canonical order.
func (s *Snapshot) Missing() []Station {
	missing := make([]Station, 0, len(Stations()))
	for _, station := range Stations() {
		if !s.done.has(station) {
			missing = append(missing, station)
		}
	}
	return missing
}

// Newer reports whether a supersedes b in an order's history: a later timestamp wins,
// and on equal timestamps the higher id wins.
func Newer(a, b *Snapshot) bool {
	if !a.timestamp.Equal(b.timestamp) {
		return a.timestamp.After(b.timestamp)
	}
	return a.id > b.id
}

// CompareNewestFirst orders snapshots for slices.SortFunc, newest first.
func CompareNewestFirst(a, b *Snapshot) int {
	switch {
	case Newer(a, b):
		return -1
	case Newer(b, a):
		return 1
	default:
		return 0
	}
}
