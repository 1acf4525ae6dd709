package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/room-escape-reservation/internal/apperror"
	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/queue"
	"github.com/iliyamo/room-escape-reservation/internal/repository"
)

type memberStoreMock struct{ mock.Mock }

func (m *memberStoreMock) Create(ctx context.Context, mem *model.Member) error {
	args := m.Called(ctx, mem)
	if args.Error(0) == nil {
		mem.ID = 1
	}
	return args.Error(0)
}

func (m *memberStoreMock) GetByID(ctx context.Context, id uint64) (*model.Member, error) {
	args := m.Called(ctx, id)
	mem, _ := args.Get(0).(*model.Member)
	return mem, args.Error(1)
}

func (m *memberStoreMock) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	args := m.Called(ctx, email)
	mem, _ := args.Get(0).(*model.Member)
	return mem, args.Error(1)
}

func (m *memberStoreMock) ListAll(ctx context.Context) ([]model.Member, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Member)
	return out, args.Error(1)
}

type themeStoreMock struct{ mock.Mock }

func (m *themeStoreMock) Create(ctx context.Context, t *model.Theme) error {
	args := m.Called(ctx, t)
	if args.Error(0) == nil {
		t.ID = 7
	}
	return args.Error(0)
}

func (m *themeStoreMock) GetByID(ctx context.Context, id uint64) (*model.Theme, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*model.Theme)
	return t, args.Error(1)
}

func (m *themeStoreMock) ListAll(ctx context.Context) ([]model.Theme, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Theme)
	return out, args.Error(1)
}

func (m *themeStoreMock) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *themeStoreMock) DeleteByID(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type timeStoreMock struct{ mock.Mock }

func (m *timeStoreMock) Create(ctx context.Context, t *model.ReservationTime) error {
	args := m.Called(ctx, t)
	if args.Error(0) == nil {
		t.ID = 3
	}
	return args.Error(0)
}

func (m *timeStoreMock) GetByID(ctx context.Context, id uint64) (*model.ReservationTime, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*model.ReservationTime)
	return t, args.Error(1)
}

func (m *timeStoreMock) ListAll(ctx context.Context) ([]model.ReservationTime, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.ReservationTime)
	return out, args.Error(1)
}

func (m *timeStoreMock) ExistsByStartAt(ctx context.Context, c model.Clock) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *timeStoreMock) DeleteByID(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type reservationStoreMock struct{ mock.Mock }

func (m *reservationStoreMock) Create(ctx context.Context, r *model.Reservation) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil {
		r.ID = 42
	}
	return args.Error(0)
}

func (m *reservationStoreMock) ListAll(ctx context.Context) ([]model.Reservation, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Reservation)
	return out, args.Error(1)
}

func (m *reservationStoreMock) ListByMember(ctx context.Context, memberID uint64) ([]model.Reservation, error) {
	args := m.Called(ctx, memberID)
	out, _ := args.Get(0).([]model.Reservation)
	return out, args.Error(1)
}

func (m *reservationStoreMock) Search(ctx context.Context, f repository.ReservationFilter) ([]model.Reservation, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).([]model.Reservation)
	return out, args.Error(1)
}

func (m *reservationStoreMock) ExistsByDateTimeTheme(ctx context.Context, date model.Date, timeID, themeID uint64) (bool, error) {
	args := m.Called(ctx, date, timeID, themeID)
	return args.Bool(0), args.Error(1)
}

func (m *reservationStoreMock) BookedTimeIDs(ctx context.Context, date model.Date, themeID uint64) (map[uint64]bool, error) {
	args := m.Called(ctx, date, themeID)
	out, _ := args.Get(0).(map[uint64]bool)
	return out, args.Error(1)
}

func (m *reservationStoreMock) DeleteByID(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

// publisherStub records published events on a buffered channel.
type publisherStub struct {
	events chan queue.ReservationEvent
	err    error
}

func newPublisherStub(err error) *publisherStub {
	return &publisherStub{events: make(chan queue.ReservationEvent, 8), err: err}
}

func (p *publisherStub) Publish(_ context.Context, ev queue.ReservationEvent) error {
	p.events <- ev
	return p.err
}

// kindOf is the domain error kind carried by err, or the zero Kind.
func kindOf(err error) apperror.Kind {
	if e, ok := apperror.As(err); ok {
		return e.Kind
	}
	return 0
}
