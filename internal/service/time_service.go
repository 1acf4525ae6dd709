package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/room-escape-reservation/internal/apperror"
	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/repository"
)

const (
	msgDuplicateTime = "이미 존재하는 예약 시간입니다."
	msgTimeInUse     = "예약이 존재하는 시간은 삭제할 수 없습니다."
)

// TimeAvailability pairs a time slot with whether it is taken for the
// requested date and theme.
type TimeAvailability struct {
	Time          model.ReservationTime
	AlreadyBooked bool
}

// TimeService manages the bookable time slots.
type TimeService struct {
	times        TimeStore
	reservations ReservationStore
}

func NewTimeService(times TimeStore, reservations ReservationStore) *TimeService {
	return &TimeService{times: times, reservations: reservations}
}

func (s *TimeService) FindAll(ctx context.Context) ([]model.ReservationTime, error) {
	out, err := s.times.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list times: %w", err)
	}
	return out, nil
}

// FindAvailability returns every time slot flagged with whether a
// reservation exists for it on date for themeID.
func (s *TimeService) FindAvailability(ctx context.Context, date model.Date, themeID uint64) ([]TimeAvailability, error) {
	times, err := s.times.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list times: %w", err)
	}
	booked, err := s.reservations.BookedTimeIDs(ctx, date, themeID)
	if err != nil {
		return nil, fmt.Errorf("booked times: %w", err)
	}
	out := make([]TimeAvailability, 0, len(times))
	for _, t := range times {
		out = append(out, TimeAvailability{Time: t, AlreadyBooked: booked[t.ID]})
	}
	return out, nil
}

// Create adds a slot.  A start time that already exists is rejected.
func (s *TimeService) Create(ctx context.Context, startAt model.Clock) (*model.ReservationTime, error) {
	exists, err := s.times.ExistsByStartAt(ctx, startAt)
	if err != nil {
		return nil, fmt.Errorf("check time: %w", err)
	}
	if exists {
		return nil, apperror.BadRequest(msgDuplicateTime)
	}
	rt := &model.ReservationTime{StartAt: startAt}
	if err := s.times.Create(ctx, rt); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.BadRequest(msgDuplicateTime)
		}
		return nil, fmt.Errorf("create time: %w", err)
	}
	return rt, nil
}

// DeleteByID removes a slot.  Missing ids succeed; slots still
// referenced by reservations are refused.
func (s *TimeService) DeleteByID(ctx context.Context, id uint64) error {
	if err := s.times.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return apperror.BadRequest(msgTimeInUse)
		}
		return fmt.Errorf("delete time %d: %w", id, err)
	}
	return nil
}
