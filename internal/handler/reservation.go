package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/service"
)

// ReservationService is implemented by *service.ReservationService.
type ReservationService interface {
	FindAll(ctx context.Context) ([]model.Reservation, error)
	FindMine(ctx context.Context, auth model.AuthInfo) ([]model.Reservation, error)
	Search(ctx context.Context, f service.SearchFilter) ([]model.Reservation, error)
	Create(ctx context.Context, in service.CreateReservation) (*model.Reservation, error)
	DeleteByID(ctx context.Context, id uint64) error
}

// ReservationHandler serves /reservations and /admin/reservations.
type ReservationHandler struct {
	svc ReservationService
}

func NewReservationHandler(svc ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

type reservationRequest struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02" message:"예약 날짜는 yyyy-MM-dd 형식으로 입력해야 합니다."`
	ThemeID uint64 `json:"themeId" validate:"required" message:"테마 ID를 입력해야 합니다."`
	TimeID  uint64 `json:"timeId" validate:"required" message:"예약 시간 ID를 입력해야 합니다."`
}

type adminReservationRequest struct {
	reservationRequest
	MemberID uint64 `json:"memberId" validate:"required" message:"사용자 ID를 입력해야 합니다."`
}

// FindAll handles GET /reservations.
func (h *ReservationHandler) FindAll(c echo.Context) error {
	list, err := h.svc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(list, toReservation))
}

// FindMine handles GET /reservations-mine.
func (h *ReservationHandler) FindMine(c echo.Context) error {
	auth, err := authInfo(c)
	if err != nil {
		return err
	}
	list, err := h.svc.FindMine(c.Request().Context(), auth)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(list, toMyReservation))
}

// Create handles POST /reservations.  The member is the caller.
func (h *ReservationHandler) Create(c echo.Context) error {
	return h.createForCaller(c, model.StatusReserved)
}

// CreateWaiting handles POST /reservations/waiting.
func (h *ReservationHandler) CreateWaiting(c echo.Context) error {
	return h.createForCaller(c, model.StatusWaiting)
}

func (h *ReservationHandler) createForCaller(c echo.Context, status string) error {
	auth, err := authInfo(c)
	if err != nil {
		return err
	}
	var req reservationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.create(c, req, auth.MemberID, status)
}

// CreateForMember handles POST /admin/reservations.  The member comes
// from the request body.
func (h *ReservationHandler) CreateForMember(c echo.Context) error {
	var req adminReservationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.create(c, req.reservationRequest, req.MemberID, model.StatusReserved)
}

func (h *ReservationHandler) create(c echo.Context, req reservationRequest, memberID uint64, status string) error {
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return errMalformed("date")
	}
	res, err := h.svc.Create(c.Request().Context(), service.CreateReservation{
		MemberID: memberID,
		ThemeID:  req.ThemeID,
		TimeID:   req.TimeID,
		Date:     date,
		Status:   status,
	})
	if err != nil {
		return err
	}
	// no slash between path and id; existing clients depend on it
	c.Response().Header().Set(echo.HeaderLocation, "/reservations"+strconv.FormatUint(res.ID, 10))
	return c.JSON(http.StatusCreated, toReservation(*res))
}

// Search handles GET /admin/reservations?themeId&memberId&dateFrom&dateTo.
func (h *ReservationHandler) Search(c echo.Context) error {
	var (
		f   service.SearchFilter
		err error
	)
	if f.ThemeID, err = optionalUint(c, "themeId"); err != nil {
		return err
	}
	if f.MemberID, err = optionalUint(c, "memberId"); err != nil {
		return err
	}
	if f.DateFrom, err = optionalDate(c, "dateFrom"); err != nil {
		return err
	}
	if f.DateTo, err = optionalDate(c, "dateTo"); err != nil {
		return err
	}
	list, err := h.svc.Search(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(list, toReservation))
}

// Delete handles DELETE /reservations/:id.
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
