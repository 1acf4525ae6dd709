package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/room-escape-reservation/internal/model"
)

// ReservationRepo persists reservations.  Reads join the member, time
// slot and theme so callers receive fully populated records.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationSelect = `SELECT r.id, r.date, r.status, r.created_at,
       m.id, m.name,
       t.id, t.start_at,
       th.id, th.name, th.description, th.thumbnail
  FROM reservations r
  JOIN members m            ON m.id = r.member_id
  JOIN reservation_times t  ON t.id = r.time_id
  JOIN themes th            ON th.id = r.theme_id`

// Create inserts a reservation for res.Member, res.Time and res.Theme.
// It populates ID and CreatedAt.  A second reservation for the same
// date, time and theme is rejected by the unique key with ErrDuplicate.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	if res.Status == "" {
		res.Status = model.StatusReserved
	}
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO reservations (member_id, date, time_id, theme_id, status) VALUES (?, ?, ?, ?, ?)",
		res.Member.ID, res.Date, res.Time.ID, res.Theme.ID, res.Status)
	if err != nil {
		return translate(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	// Query back created_at so the record matches what a later read returns.
	if err := r.db.QueryRowContext(ctx, "SELECT created_at FROM reservations WHERE id = ?", res.ID).
		Scan(&res.CreatedAt); err != nil {
		return translate(err)
	}
	return nil
}

// ListAll returns every reservation ordered by id.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
	return r.list(ctx, reservationSelect+" ORDER BY r.id")
}

// ListByMember returns the member's reservations, soonest first.
func (r *ReservationRepo) ListByMember(ctx context.Context, memberID uint64) ([]model.Reservation, error) {
	return r.list(ctx, reservationSelect+" WHERE r.member_id = ? ORDER BY r.date, t.start_at, r.id", memberID)
}

// ExistsByDateTimeTheme reports whether the slot is already booked.
func (r *ReservationRepo) ExistsByDateTimeTheme(ctx context.Context, date model.Date, timeID, themeID uint64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM reservations WHERE date = ? AND time_id = ? AND theme_id = ?",
		date, timeID, themeID).Scan(&n)
	return n > 0, err
}

// BookedTimeIDs returns the set of time slot IDs already reserved for
// the theme on date.
func (r *ReservationRepo) BookedTimeIDs(ctx context.Context, date model.Date, themeID uint64) (map[uint64]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT time_id FROM reservations WHERE date = ? AND theme_id = ?", date, themeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	booked := make(map[uint64]bool)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		booked[id] = true
	}
	return booked, rows.Err()
}

// DeleteByID removes a reservation.  Deleting a missing id is not an
// error.
func (r *ReservationRepo) DeleteByID(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM reservations WHERE id = ?", id)
	return translate(err)
}

func (r *ReservationRepo) list(ctx context.Context, query string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}

func scanReservation(s scanner) (*model.Reservation, error) {
	var res model.Reservation
	err := s.Scan(
		&res.ID, &res.Date, &res.Status, &res.CreatedAt,
		&res.Member.ID, &res.Member.Name,
		&res.Time.ID, &res.Time.StartAt,
		&res.Theme.ID, &res.Theme.Name, &res.Theme.Description, &res.Theme.Thumbnail,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
