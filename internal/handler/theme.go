package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-escape-reservation/internal/model"
)

// ThemeService is implemented by *service.ThemeService.
type ThemeService interface {
	FindAll(ctx context.Context) ([]model.Theme, error)
	Create(ctx context.Context, in model.Theme) (*model.Theme, error)
	DeleteByID(ctx context.Context, id uint64) error
}

type ThemeHandler struct {
	svc ThemeService
}

func NewThemeHandler(svc ThemeService) *ThemeHandler { return &ThemeHandler{svc: svc} }

type themeRequest struct {
	Name        string `json:"name" validate:"required,max=100" message:"테마 이름은 1~100자로 입력해야 합니다."`
	Description string `json:"description" validate:"max=500" message:"테마 설명은 500자 이하여야 합니다."`
	Thumbnail   string `json:"thumbnail" validate:"omitempty,url,max=500" message:"썸네일은 500자 이하의 URL이어야 합니다."`
}

func (h *ThemeHandler) FindAll(c echo.Context) error {
	list, err := h.svc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(list, toTheme))
}

// Create handles POST /themes and points Location at the new theme.
func (h *ThemeHandler) Create(c echo.Context) error {
	var req themeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	th, err := h.svc.Create(c.Request().Context(), model.Theme{
		Name:        req.Name,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, "/themes/"+strconv.FormatUint(th.ID, 10))
	return c.JSON(http.StatusCreated, toTheme(*th))
}

func (h *ThemeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
