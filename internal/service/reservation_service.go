package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/room-escape-reservation/internal/apperror"
	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/queue"
	"github.com/iliyamo/room-escape-reservation/internal/repository"
)

const (
	msgPastReservation      = "지나간 날짜와 시간에 대한 예약을 생성할 수 없습니다."
	msgDuplicateReservation = "중복된 시간과 날짜에 대한 예약을 생성할 수 없습니다."
	msgInvalidDateRange     = "종료 날짜가 시작 날짜 이전일 수 없습니다."
)

// publishTimeout bounds a single event publish.
const publishTimeout = 5 * time.Second

// CreateReservation is the input of ReservationService.Create.  Status
// is RESERVED unless the caller used the waiting endpoint.
type CreateReservation struct {
	MemberID uint64
	ThemeID  uint64
	TimeID   uint64
	Date     model.Date
	Status   string
}

// SearchFilter narrows the admin search.  Nil fields are ignored.
type SearchFilter struct {
	ThemeID  *uint64
	MemberID *uint64
	DateFrom *model.Date
	DateTo   *model.Date
}

// ReservationService implements reservation creation, listing, search
// and cancellation.
type ReservationService struct {
	reservations ReservationStore
	times        TimeStore
	members      MemberStore
	themes       ThemeStore
	events       EventPublisher
	loc          *time.Location
	now          Clock
	log          *zap.Logger
}

// NewReservationService wires the service.  events may be nil, in which
// case no events are published.
func NewReservationService(res ReservationStore, times TimeStore, members MemberStore, themes ThemeStore, events EventPublisher, loc *time.Location, log *zap.Logger) *ReservationService {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ReservationService{
		reservations: res,
		times:        times,
		members:      members,
		themes:       themes,
		events:       events,
		loc:          loc,
		now:          time.Now,
		log:          log,
	}
}

// WithClock replaces the time source.  It returns s for chaining.
func (s *ReservationService) WithClock(now Clock) *ReservationService {
	s.now = now
	return s
}

func (s *ReservationService) FindAll(ctx context.Context) ([]model.Reservation, error) {
	out, err := s.reservations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return out, nil
}

// FindMine lists the reservations booked by the authenticated member.
func (s *ReservationService) FindMine(ctx context.Context, auth model.AuthInfo) ([]model.Reservation, error) {
	out, err := s.reservations.ListByMember(ctx, auth.MemberID)
	if err != nil {
		return nil, fmt.Errorf("list reservations of member %d: %w", auth.MemberID, err)
	}
	return out, nil
}

// Search applies the admin filter.  An inverted date range is rejected
// before the store is queried.
func (s *ReservationService) Search(ctx context.Context, f SearchFilter) ([]model.Reservation, error) {
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return nil, apperror.BadRequest(msgInvalidDateRange)
	}
	out, err := s.reservations.Search(ctx, repository.ReservationFilter{
		ThemeID:  f.ThemeID,
		MemberID: f.MemberID,
		DateFrom: f.DateFrom,
		DateTo:   f.DateTo,
	})
	if err != nil {
		return nil, fmt.Errorf("search reservations: %w", err)
	}
	return out, nil
}

// Create books a slot.  The checks run in a fixed order so that the
// first failing rule decides the error: time slot, past date, duplicate
// slot, member, theme.
func (s *ReservationService) Create(ctx context.Context, in CreateReservation) (*model.Reservation, error) {
	rt, err := s.times.GetByID(ctx, in.TimeID)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("예약시간을 찾을 수 없습니다. timeId = %d", in.TimeID))
	}

	res := &model.Reservation{Date: in.Date, Time: *rt, Status: in.Status}
	if res.Status == "" {
		res.Status = model.StatusReserved
	}
	if res.StartsAt(s.loc).Before(s.now().In(s.loc)) {
		return nil, apperror.BadRequest(msgPastReservation)
	}

	exists, err := s.reservations.ExistsByDateTimeTheme(ctx, in.Date, in.TimeID, in.ThemeID)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if exists {
		return nil, apperror.BadRequest(msgDuplicateReservation)
	}

	member, err := s.members.GetByID(ctx, in.MemberID)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("사용자를 찾을 수 없습니다. memberId = %d", in.MemberID))
	}
	theme, err := s.themes.GetByID(ctx, in.ThemeID)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("테마를 찾을 수 없습니다. themeId = %d", in.ThemeID))
	}

	res.Member, res.Theme = *member, *theme
	if err := s.reservations.Create(ctx, res); err != nil {
		// a concurrent booking won the race between the check and the insert
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.BadRequest(msgDuplicateReservation)
		}
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.publish(queue.ReservationEvent{
		Type:          queue.EventReservationCreated,
		ReservationID: res.ID,
		MemberID:      member.ID,
		MemberName:    member.Name,
		ThemeID:       theme.ID,
		ThemeName:     theme.Name,
		Date:          res.Date.String(),
		StartAt:       rt.StartAt.String(),
		Status:        res.Status,
	})
	return res, nil
}

// DeleteByID cancels a reservation.  A missing id is not an error.
func (s *ReservationService) DeleteByID(ctx context.Context, id uint64) error {
	if err := s.reservations.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete reservation %d: %w", id, err)
	}
	s.publish(queue.ReservationEvent{
		Type:          queue.EventReservationDeleted,
		ReservationID: id,
	})
	return nil
}

// publish hands the event to the broker in the background.  Failures are
// logged and never reach the caller.
func (s *ReservationService) publish(ev queue.ReservationEvent) {
	if s.events == nil {
		return
	}
	ev.ID = uuid.NewString()
	ev.OccurredAt = s.now().UTC().Format(time.RFC3339)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := s.events.Publish(ctx, ev); err != nil {
			s.log.Warn("reservation event not published",
				zap.String("type", ev.Type),
				zap.Uint64("reservation_id", ev.ReservationID),
				zap.Error(err))
		}
	}()
}

// notFound converts repository.ErrNotFound into a NotFound domain error
// with msg and wraps anything else.
func notFound(err error, msg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound(msg)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
