package repository

import (
	"context"
	"strings"

	"github.com/iliyamo/room-escape-reservation/internal/model"
)

// ReservationFilter narrows an admin search.  Nil fields are not
// applied; the supplied ones are combined with AND.  DateFrom and DateTo
// are inclusive.
type ReservationFilter struct {
	ThemeID  *uint64
	MemberID *uint64
	DateFrom *model.Date
	DateTo   *model.Date
}

// Search returns reservations matching every supplied predicate,
// ordered by date, start time and id.
func (r *ReservationRepo) Search(ctx context.Context, f ReservationFilter) ([]model.Reservation, error) {
	where := []string{}
	args := []any{}

	if f.ThemeID != nil {
		where = append(where, "r.theme_id = ?")
		args = append(args, *f.ThemeID)
	}
	if f.MemberID != nil {
		where = append(where, "r.member_id = ?")
		args = append(args, *f.MemberID)
	}
	if f.DateFrom != nil {
		where = append(where, "r.date >= ?")
		args = append(args, *f.DateFrom)
	}
	if f.DateTo != nil {
		where = append(where, "r.date <= ?")
		args = append(args, *f.DateTo)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}
	return r.list(ctx, reservationSelect+" WHERE "+cond+" ORDER BY r.date, t.start_at, r.id", args...)
}
