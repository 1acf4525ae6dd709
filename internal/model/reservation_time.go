package model

// ReservationTime is a reusable time-of-day slot, independent of any
// date.  A reservation pairs it with a calendar date.
type ReservationTime struct {
	ID      uint64 // reservation_times.id
	StartAt Clock  // reservation_times.start_at
}
