package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-escape-reservation/internal/apperror"
	"github.com/iliyamo/room-escape-reservation/internal/middleware"
	"github.com/iliyamo/room-escape-reservation/internal/model"
)

// pathID parses the :id path parameter.  Zero parses; deletes of ids
// that match nothing succeed anyway.
func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errMalformed("id")
	}
	return id, nil
}

// optionalUint parses an optional numeric query parameter.
func optionalUint(c echo.Context, name string) (*uint64, error) {
	s := strings.TrimSpace(c.QueryParam(name))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, errMalformed(name)
	}
	return &n, nil
}

// optionalDate parses an optional YYYY-MM-DD query parameter.
func optionalDate(c echo.Context, name string) (*model.Date, error) {
	s := strings.TrimSpace(c.QueryParam(name))
	if s == "" {
		return nil, nil
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return nil, errMalformed(name)
	}
	return &d, nil
}

// bindAndValidate decodes the body into req and runs the validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// authInfo returns the caller identity set by the JWT middleware.
func authInfo(c echo.Context) (model.AuthInfo, error) {
	info, ok := middleware.AuthInfoFrom(c)
	if !ok {
		return model.AuthInfo{}, apperror.Authentication("인증 정보가 없습니다.")
	}
	return info, nil
}
