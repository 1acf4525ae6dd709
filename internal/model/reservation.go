package model

import "time"

// Reservation statuses.  The status is fixed by the endpoint that
// created the reservation and never changes afterwards.
const (
	StatusReserved = "RESERVED"
	StatusWaiting  = "WAITING"
)

// Reservation records a member's booking of a theme at a time slot on
// a calendar date.  The (Date, Time.ID, Theme.ID) triple is unique.
// Reservations are created or deleted, never updated in place.
//
// Fields:
//  ID        – primary key identifier.
//  Member    – member who booked; only ID and Name are loaded.
//  Date      – calendar date of the booking.
//  Time      – booked time slot.
//  Theme     – booked theme.
//  Status    – RESERVED or WAITING.
//  CreatedAt – creation timestamp.
type Reservation struct {
	ID        uint64          // reservations.id
	Member    Member          // reservations.member_id
	Date      Date            // reservations.date
	Time      ReservationTime // reservations.time_id
	Theme     Theme           // reservations.theme_id
	Status    string          // reservations.status
	CreatedAt time.Time       // reservations.created_at
}

// StartsAt returns the moment the reservation begins in loc.
func (r Reservation) StartsAt(loc *time.Location) time.Time {
	return r.Date.At(r.Time.StartAt, loc)
}

// StatusLabel is the user-facing text for the reservation status.
func (r Reservation) StatusLabel() string {
	if r.Status == StatusWaiting {
		return "예약대기"
	}
	return "예약"
}
