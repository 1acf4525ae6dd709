package middleware

// identity.go holds the context accessors shared by the middleware and
// the handlers.  JWTAuth stores a model.AuthInfo under authInfoKey; the
// rate limiter derives its per-user key from it.

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-escape-reservation/internal/model"
)

const authInfoKey = "auth_info"

func setAuthInfo(c echo.Context, info model.AuthInfo) {
	c.Set(authInfoKey, info)
}

// AuthInfoFrom returns the identity JWTAuth attached to the request.
func AuthInfoFrom(c echo.Context) (model.AuthInfo, bool) {
	info, ok := c.Get(authInfoKey).(model.AuthInfo)
	return info, ok && info.MemberID != 0
}

// userID returns the member id as a string, or "guest" for anonymous
// requests.
func userID(c echo.Context) string {
	if info, ok := AuthInfoFrom(c); ok {
		return strconv.FormatUint(info.MemberID, 10)
	}
	return "guest"
}
