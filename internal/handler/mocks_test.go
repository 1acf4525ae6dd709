package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/service"
	"github.com/iliyamo/room-escape-reservation/internal/utils"
)

type reservationServiceMock struct{ mock.Mock }

func (m *reservationServiceMock) FindAll(ctx context.Context) ([]model.Reservation, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Reservation)
	return out, args.Error(1)
}

func (m *reservationServiceMock) FindMine(ctx context.Context, auth model.AuthInfo) ([]model.Reservation, error) {
	args := m.Called(ctx, auth)
	out, _ := args.Get(0).([]model.Reservation)
	return out, args.Error(1)
}

func (m *reservationServiceMock) Search(ctx context.Context, f service.SearchFilter) ([]model.Reservation, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).([]model.Reservation)
	return out, args.Error(1)
}

func (m *reservationServiceMock) Create(ctx context.Context, in service.CreateReservation) (*model.Reservation, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*model.Reservation)
	return out, args.Error(1)
}

func (m *reservationServiceMock) DeleteByID(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type timeServiceMock struct{ mock.Mock }

func (m *timeServiceMock) FindAll(ctx context.Context) ([]model.ReservationTime, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.ReservationTime)
	return out, args.Error(1)
}

func (m *timeServiceMock) FindAvailability(ctx context.Context, date model.Date, themeID uint64) ([]service.TimeAvailability, error) {
	args := m.Called(ctx, date, themeID)
	out, _ := args.Get(0).([]service.TimeAvailability)
	return out, args.Error(1)
}

func (m *timeServiceMock) Create(ctx context.Context, startAt model.Clock) (*model.ReservationTime, error) {
	args := m.Called(ctx, startAt)
	out, _ := args.Get(0).(*model.ReservationTime)
	return out, args.Error(1)
}

func (m *timeServiceMock) DeleteByID(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type themeServiceMock struct{ mock.Mock }

func (m *themeServiceMock) FindAll(ctx context.Context) ([]model.Theme, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Theme)
	return out, args.Error(1)
}

func (m *themeServiceMock) Create(ctx context.Context, in model.Theme) (*model.Theme, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*model.Theme)
	return out, args.Error(1)
}

func (m *themeServiceMock) DeleteByID(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type memberServiceMock struct{ mock.Mock }

func (m *memberServiceMock) Signup(ctx context.Context, in service.Signup) (*model.Member, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*model.Member)
	return out, args.Error(1)
}

func (m *memberServiceMock) Login(ctx context.Context, email, password string) (utils.AccessToken, error) {
	args := m.Called(ctx, email, password)
	out, _ := args.Get(0).(utils.AccessToken)
	return out, args.Error(1)
}

func (m *memberServiceMock) Check(ctx context.Context, auth model.AuthInfo) (*model.Member, error) {
	args := m.Called(ctx, auth)
	out, _ := args.Get(0).(*model.Member)
	return out, args.Error(1)
}

func (m *memberServiceMock) FindAll(ctx context.Context) ([]model.Member, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]model.Member)
	return out, args.Error(1)
}
