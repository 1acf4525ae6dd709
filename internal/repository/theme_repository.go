package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/room-escape-reservation/internal/model"
)

// ThemeRepo persists themes.
type ThemeRepo struct {
	db *sql.DB
}

func NewThemeRepo(db *sql.DB) *ThemeRepo { return &ThemeRepo{db: db} }

// Create inserts the theme and fills in its ID.
func (r *ThemeRepo) Create(ctx context.Context, t *model.Theme) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO themes (name, description, thumbnail) VALUES (?, ?, ?)",
		t.Name, t.Description, t.Thumbnail)
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

// GetByID fetches a theme; ErrNotFound when absent.
func (r *ThemeRepo) GetByID(ctx context.Context, id uint64) (*model.Theme, error) {
	var t model.Theme
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, description, thumbnail FROM themes WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &t.Description, &t.Thumbnail)
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// ListAll returns every theme ordered by id.
func (r *ThemeRepo) ListAll(ctx context.Context) ([]model.Theme, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, description, thumbnail FROM themes ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Theme, 0)
	for rows.Next() {
		var t model.Theme
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Thumbnail); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ExistsByName reports whether a theme with this exact name exists.
func (r *ThemeRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM themes WHERE name = ?", name).Scan(&n)
	return n > 0, err
}

// DeleteByID removes a theme.  There is no existence check; themes still
// referenced by reservations yield ErrInUse.
func (r *ThemeRepo) DeleteByID(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM themes WHERE id = ?", id)
	return translate(err)
}
