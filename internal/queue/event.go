// Package queue defines message payloads exchanged over the message broker
// and the RabbitMQ publisher and consumer that carry them.
package queue

// Event types carried on the reservation queue.
const (
	EventReservationCreated = "reservation.created"
	EventReservationDeleted = "reservation.deleted"
)

// ReservationEvent is published after a reservation is created or
// deleted.  It contains enough information for downstream consumers to
// log or notify without querying the primary database.  Deleted events
// only carry ReservationID.
type ReservationEvent struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	ReservationID uint64 `json:"reservation_id"`
	MemberID      uint64 `json:"member_id,omitempty"`
	MemberName    string `json:"member_name,omitempty"`
	ThemeID       uint64 `json:"theme_id,omitempty"`
	ThemeName     string `json:"theme_name,omitempty"`
	Date          string `json:"date,omitempty"`
	StartAt       string `json:"start_at,omitempty"`
	Status        string `json:"status,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}
