package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/room-escape-reservation/internal/model"
)

// MemberRepo persists members.
type MemberRepo struct {
	db *sql.DB
}

func NewMemberRepo(db *sql.DB) *MemberRepo { return &MemberRepo{db: db} }

const memberColumns = "id, name, email, password_hash, role, created_at"

// Create inserts the member and fills in its ID.  The email is
// normalized to lower case; a taken email yields ErrDuplicate.
func (r *MemberRepo) Create(ctx context.Context, m *model.Member) error {
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	if m.Role == "" {
		m.Role = model.RoleMember
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO members (name, email, password_hash, role) VALUES (?, ?, ?, ?)",
		m.Name, m.Email, m.PasswordHash, m.Role)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// GetByID fetches a member by id.
func (r *MemberRepo) GetByID(ctx context.Context, id uint64) (*model.Member, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+memberColumns+" FROM members WHERE id = ?", id)
	return scanMember(row)
}

// GetByEmail fetches a member by normalized email.
func (r *MemberRepo) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := r.db.QueryRowContext(ctx, "SELECT "+memberColumns+" FROM members WHERE email = ?", email)
	return scanMember(row)
}

// ListAll returns every member ordered by id.
func (r *MemberRepo) ListAll(ctx context.Context) ([]model.Member, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+memberColumns+" FROM members ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// DeleteByID removes a member.  Members with reservations yield ErrInUse.
func (r *MemberRepo) DeleteByID(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM members WHERE id = ?", id)
	return translate(err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMember(s scanner) (*model.Member, error) {
	var m model.Member
	if err := s.Scan(&m.ID, &m.Name, &m.Email, &m.PasswordHash, &m.Role, &m.CreatedAt); err != nil {
		return nil, translate(err)
	}
	return &m, nil
}
