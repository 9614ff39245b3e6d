package preparation

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// FirstUpdatePolicy decides what a station update does for an order with no snapshots.
//
// Orders placed through the API are seeded on creation, so the policy only matters when
// seeding failed or the order was recorded by other means.
type FirstUpdatePolicy int

const (
	// SeedOnly appends the all-false seed and returns it; the requested station is not
	// applied. A second update applies it. This matches the historic service behaviour.
	SeedOnly FirstUpdatePolicy = iota

	// SeedAndApply appends the seed and then the snapshot with the requested station
	// applied, returning the latter.
	SeedAndApply
)

func (p FirstUpdatePolicy) String() string {
	switch p {
	case SeedOnly:
		return "seed_only"
	case SeedAndApply:
		return "seed_and_apply"
	default:
		return "unknown"
	}
}

// ParseFirstUpdatePolicy reads the configuration form ("seed_only", "seed_and_apply").
// An empty value selects SeedOnly.
func ParseFirstUpdatePolicy(value string) (FirstUpdatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "seed_only":
		return SeedOnly, nil
	case "seed_and_apply":
		return SeedAndApply, nil
	default:
		return SeedOnly, errs.NewValueIsInvalidErrorWithCause(
			"first update policy",
			fmt.Errorf("%q is not one of seed_only, seed_and_apply", value),
		)
	}
}
