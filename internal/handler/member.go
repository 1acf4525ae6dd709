package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-escape-reservation/internal/middleware"
	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/service"
	"github.com/iliyamo/room-escape-reservation/internal/utils"
)

// MemberService is implemented by *service.MemberService.
type MemberService interface {
	Signup(ctx context.Context, in service.Signup) (*model.Member, error)
	Login(ctx context.Context, email, password string) (utils.AccessToken, error)
	Check(ctx context.Context, auth model.AuthInfo) (*model.Member, error)
	FindAll(ctx context.Context) ([]model.Member, error)
}

// MemberHandler bundles signup, login and member listing.
type MemberHandler struct {
	svc          MemberService
	secureCookie bool
}

// NewMemberHandler builds the handler.  secureCookie marks the token
// cookie Secure, which production deployments behind TLS want.
func NewMemberHandler(svc MemberService, secureCookie bool) *MemberHandler {
	return &MemberHandler{svc: svc, secureCookie: secureCookie}
}

// ----- DTOs -----

type signupRequest struct {
	Name     string `json:"name" validate:"required,max=50" message:"이름을 입력해야 합니다."`
	Email    string `json:"email" validate:"required,email" message:"올바른 이메일을 입력해야 합니다."`
	Password string `json:"password" validate:"required,min=4,max=72" message:"비밀번호는 4자 이상 72자 이하여야 합니다."`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email" message:"올바른 이메일을 입력해야 합니다."`
	Password string `json:"password" validate:"required" message:"비밀번호를 입력해야 합니다."`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type checkResponse struct {
	Name string `json:"name"`
}

// Signup handles POST /members.
func (h *MemberHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	m, err := h.svc.Signup(c.Request().Context(), service.Signup{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMember(*m))
}

// Login handles POST /login.  The token is both set as an HttpOnly
// cookie and returned in the body for API clients.
func (h *MemberHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	tok, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    tok.Token,
		Path:     "/",
		Expires:  tok.Exp,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, loginResponse{AccessToken: tok.Token})
}

// Check handles GET /login/check.
func (h *MemberHandler) Check(c echo.Context) error {
	auth, err := authInfo(c)
	if err != nil {
		return err
	}
	m, err := h.svc.Check(c.Request().Context(), auth)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checkResponse{Name: m.Name})
}

// Logout handles POST /logout by expiring the token cookie.
func (h *MemberHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

// FindAll handles GET /admin/members.
func (h *MemberHandler) FindAll(c echo.Context) error {
	list, err := h.svc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listOf(list, toMember))
}
