package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/room-escape-reservation/internal/model"
)

// TimeRepo persists reservation time slots.
type TimeRepo struct {
	db *sql.DB
}

func NewTimeRepo(db *sql.DB) *TimeRepo { return &TimeRepo{db: db} }

// Create inserts the slot and fills in its ID.
func (r *TimeRepo) Create(ctx context.Context, t *model.ReservationTime) error {
	res, err := r.db.ExecContext(ctx, "INSERT INTO reservation_times (start_at) VALUES (?)", t.StartAt)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// GetByID fetches a slot; ErrNotFound when absent.
func (r *TimeRepo) GetByID(ctx context.Context, id uint64) (*model.ReservationTime, error) {
	var t model.ReservationTime
	err := r.db.QueryRowContext(ctx, "SELECT id, start_at FROM reservation_times WHERE id = ?", id).
		Scan(&t.ID, &t.StartAt)
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// ListAll returns every slot ordered by start time.
func (r *TimeRepo) ListAll(ctx context.Context) ([]model.ReservationTime, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, start_at FROM reservation_times ORDER BY start_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ReservationTime, 0)
	for rows.Next() {
		var t model.ReservationTime
		if err := rows.Scan(&t.ID, &t.StartAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ExistsByStartAt reports whether a slot already starts at c.
func (r *TimeRepo) ExistsByStartAt(ctx context.Context, c model.Clock) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reservation_times WHERE start_at = ?", c).Scan(&n)
	return n > 0, err
}

// DeleteByID removes a slot without an existence check.  Slots still
// referenced by reservations yield ErrInUse.
func (r *TimeRepo) DeleteByID(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM reservation_times WHERE id = ?", id)
	return translate(err)
}
