package preparation

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Station is a kitchen preparation stage. The zero value is Unknown and never valid.
type Station uint8

const (
	Unknown Station = iota
	Grill
	Salad
	Fries
	Refill
)

// Stations lists every station in canonical order.
func Stations() []Station {
	return []Station{Grill, Salad, Fries, Refill}
}

func getStationStrings() map[Station]string {
	return map[Station]string{
		Unknown: "unknown",
		Grill:   "grill",
		Salad:   "salad",
		Fries:   "fries",
		Refill:  "refill",
	}
}

// ParseStation resolves a station name case-insensitively.
//
// Any other value fails with a ValueIsInvalidError naming the valid stations,
// e.g. "value is invalid: station (cause: invalid station: oven. Valid stations are: grill, salad, fries, refill)".
func ParseStation(name string) (Station, error) {
	trimmed := strings.TrimSpace(name)
	for _, s := range Stations() {
		if strings.EqualFold(s.String(), trimmed) {
			return s, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"station",
		fmt.Errorf("invalid station: %s. Valid stations are: %s", name, validStationNames()),
	)
}

// Validate rejects Unknown and out-of-range values.
func (s Station) Validate() error {
	if s == Unknown || s > Refill {
		return errs.NewValueIsInvalidErrorWithCause(
			"station",
			fmt.Errorf("%d is not a valid station. Valid stations are: %s", s, validStationNames()),
		)
	}
	return nil
}

func (s Station) String() string {
	if str, ok := getStationStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Station) bit() stationSet {
	return 1 << (s - 1)
}

func validStationNames() string {
	names := make([]string, 0, len(Stations()))
	for _, s := range Stations() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}

// stationSet is a bitmask of completed stations.
type stationSet uint8

const allStations stationSet = 1<<4 - 1

func (set stationSet) has(s Station) bool {
	return set&s.bit() != 0
}

func (set stationSet) with(s Station) stationSet {
	return set | s.bit()
}
