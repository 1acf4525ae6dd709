package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-escape-reservation/internal/apperror"
)

// RequireRole returns a middleware that lets the request through only
// when the authenticated member holds one of roles.  It must run after
// JWTAuth; a request without AuthInfo is treated as unauthenticated.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			info, ok := AuthInfoFrom(c)
			if !ok {
				return apperror.Authentication(msgLoginRequired)
			}
			if !allowed[info.Role] {
				return apperror.Authorization("권한이 없는 사용자입니다. role = " + info.Role)
			}
			return next(c)
		}
	}
}
