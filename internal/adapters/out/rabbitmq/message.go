package rabbitmq

import (
	"time"

	"restaurant/internal/core/domain/model/preparation"
)

// PreparationMessage is the JSON body published for every appended snapshot.
type PreparationMessage struct {
	Event      preparation.EventName `json:"event"`
	SnapshotID uint64                `json:"snapshotId"`
	OrderID    string                `json:"orderId"`
	Grill      bool                  `json:"grill"`
	Salad      bool                  `json:"salad"`
	Fries      bool                  `json:"fries"`
	Refill     bool                  `json:"refill"`
	Ready      bool                  `json:"ready"`
	Timestamp  time.Time             `json:"timestamp"`
}

func NewPreparationMessage(s *preparation.Snapshot) PreparationMessage {
	return PreparationMessage{
		Event:      s.EventName(),
		SnapshotID: uint64(s.ID()),
		OrderID:    s.OrderID().String(),
		Grill:      s.Grill(),
		Salad:      s.Salad(),
		Fries:      s.Fries(),
		Refill:     s.Refill(),
		Ready:      s.Ready(),
		Timestamp:  s.Timestamp(),
	}
}
