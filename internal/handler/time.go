package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/service"
)

// TimeService is implemented by *service.TimeService.
type TimeService interface {
	FindAll(ctx context.Context) ([]model.ReservationTime, error)
	FindAvailability(ctx context.Context, date model.Date, themeID uint64) ([]service.TimeAvailability, error)
	Create(ctx context.Context, startAt model.Clock) (*model.ReservationTime, error)
	DeleteByID(ctx context.Context, id uint64) error
}

type TimeHandler struct {
	svc TimeService
}

func NewTimeHandler(svc TimeService) *TimeHandler { return &TimeHandler{svc: svc} }

type timeRequest struct {
	StartAt string `json:"startAt" validate:"required,clock" message:"예약 시간은 HH:mm 형식으로 입력해야 합니다."`
}

// FindAll handles GET /times.
func (h *TimeHandler) FindAll(c echo.Context) error {
	list, err := h.svc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(list, toTime))
}

// FindAvailability handles GET /times/filter?date&themeId.  Both
// parameters are required.
func (h *TimeHandler) FindAvailability(c echo.Context) error {
	date, err := model.ParseDate(c.QueryParam("date"))
	if err != nil {
		return errMalformed("date")
	}
	themeID, err := strconv.ParseUint(strings.TrimSpace(c.QueryParam("themeId")), 10, 64)
	if err != nil {
		return errMalformed("themeId")
	}
	list, err := h.svc.FindAvailability(c.Request().Context(), date, themeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(list, toAvailability))
}

// Create handles POST /times.
func (h *TimeHandler) Create(c echo.Context) error {
	var req timeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	startAt, err := model.ParseClock(req.StartAt)
	if err != nil {
		return errMalformed("startAt")
	}
	rt, err := h.svc.Create(c.Request().Context(), startAt)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, "/admin/time")
	return c.JSON(http.StatusCreated, toTime(*rt))
}

// Delete handles DELETE /times/:id.
func (h *TimeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
