package middleware // middleware provides reusable HTTP middleware for the echo router

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-escape-reservation/internal/apperror"
	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/utils"
)

// TokenCookie is the cookie the login endpoint stores the access token in.
const TokenCookie = "token"

const msgLoginRequired = "로그인이 필요합니다."

// JWTAuth returns an Echo middleware that validates the access token and
// stores the caller's model.AuthInfo in the context.  The token is read
// from the `token` cookie first and from an `Authorization: Bearer`
// header otherwise.  Missing or invalid tokens yield an Authentication
// error which the HTTP error handler renders as 401.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFrom(c)
			if raw == "" {
				return apperror.Authentication(msgLoginRequired)
			}
			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return apperror.Authentication("유효하지 않은 토큰입니다.")
			}
			setAuthInfo(c, model.AuthInfo{
				MemberID: claims.MemberID,
				Name:     claims.Name,
				Role:     claims.Role,
			})
			return next(c)
		}
	}
}

func tokenFrom(c echo.Context) string {
	if ck, err := c.Cookie(TokenCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}
