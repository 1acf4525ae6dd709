// Package service orchestrates the reservation use cases on top of the
// repositories.  Services translate repository sentinels into
// *apperror.Error values; anything else is wrapped and surfaces as an
// internal error.
package service

import (
	"context"
	"time"

	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/queue"
	"github.com/iliyamo/room-escape-reservation/internal/repository"
)

// MemberStore is the subset of repository.MemberRepo the services use.
type MemberStore interface {
	Create(ctx context.Context, m *model.Member) error
	GetByID(ctx context.Context, id uint64) (*model.Member, error)
	GetByEmail(ctx context.Context, email string) (*model.Member, error)
	ListAll(ctx context.Context) ([]model.Member, error)
}

type ThemeStore interface {
	Create(ctx context.Context, t *model.Theme) error
	GetByID(ctx context.Context, id uint64) (*model.Theme, error)
	ListAll(ctx context.Context) ([]model.Theme, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	DeleteByID(ctx context.Context, id uint64) error
}

type TimeStore interface {
	Create(ctx context.Context, t *model.ReservationTime) error
	GetByID(ctx context.Context, id uint64) (*model.ReservationTime, error)
	ListAll(ctx context.Context) ([]model.ReservationTime, error)
	ExistsByStartAt(ctx context.Context, c model.Clock) (bool, error)
	DeleteByID(ctx context.Context, id uint64) error
}

type ReservationStore interface {
	Create(ctx context.Context, r *model.Reservation) error
	ListAll(ctx context.Context) ([]model.Reservation, error)
	ListByMember(ctx context.Context, memberID uint64) ([]model.Reservation, error)
	Search(ctx context.Context, f repository.ReservationFilter) ([]model.Reservation, error)
	ExistsByDateTimeTheme(ctx context.Context, date model.Date, timeID, themeID uint64) (bool, error)
	BookedTimeIDs(ctx context.Context, date model.Date, themeID uint64) (map[uint64]bool, error)
	DeleteByID(ctx context.Context, id uint64) error
}

// EventPublisher is satisfied by *queue.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.ReservationEvent) error
}

// Clock returns the current instant; tests substitute a fixed one.
type Clock func() time.Time
