package preparation

// EventName classifies an appended snapshot for subscribers.
type EventName string

const (
	EventStarted          EventName = "preparation.started"
	EventStationCompleted EventName = "preparation.station_completed"
	EventReady            EventName = "preparation.ready"
)

// EventName reports how the snapshot advanced its order: a seed starts preparation,
// a snapshot with every station done makes the order ready, anything else completes
// a station.
func (s *Snapshot) EventName() EventName {
	switch {
	case s.Ready():
		return EventReady
	case s.done == 0:
		return EventStarted
	default:
		return EventStationCompleted
	}
}
