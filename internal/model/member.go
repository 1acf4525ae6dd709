package model

import "time"

// Roles a member can hold.  ADMIN unlocks the /admin endpoints.
const (
	RoleMember = "MEMBER"
	RoleAdmin  = "ADMIN"
)

// Member represents a booking user as stored in the `members` table.
// Members are created through signup and are never updated by this
// service.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name shown on reservations.
//  Email        – unique login email.
//  PasswordHash – bcrypt hashed password.
//  Role         – MEMBER or ADMIN.
//  CreatedAt    – timestamp of creation.
type Member struct {
	ID           uint64    // members.id
	Name         string    // members.name
	Email        string    // members.email
	PasswordHash string    // members.password_hash
	Role         string    // members.role
	CreatedAt    time.Time // members.created_at
}

// IsAdmin reports whether the member may use admin endpoints.
func (m Member) IsAdmin() bool { return m.Role == RoleAdmin }
