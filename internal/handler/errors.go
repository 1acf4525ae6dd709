package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/room-escape-reservation/internal/apperror"
)

// Fixed user-facing messages.  BadRequest and validation errors carry
// their own message instead.
const (
	msgMalformedInput = "입력값을 확인해 주세요."
	msgUnauthorized   = "다시 로그인해 주세요."
	msgForbidden      = "관리자만 접근이 가능합니다."
	msgNotFound       = "데이터를 찾을 수 없습니다."
	msgInternal       = "서버에서 예기치 못한 에러가 발생했습니다."
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns the echo error handler that renders every
// error as an ErrorResponse.  Each error is logged at error level with
// its original message, which may differ from what the client sees.
func NewHTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status, msg, label := resolve(err)

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
		}
		if status >= http.StatusInternalServerError {
			log.Error(label, append(fields, zap.Error(err))...)
		} else {
			log.Error(label, append(fields, zap.String("cause", err.Error()))...)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, ErrorResponse{Status: status, Message: msg})
		}
		if err != nil {
			log.Warn("error response not written", zap.Error(err))
		}
	}
}

// resolve maps err to its status, client message and log label.
func resolve(err error) (int, string, string) {
	if e, ok := apperror.As(err); ok {
		switch e.Kind {
		case apperror.KindBadRequest:
			return http.StatusBadRequest, e.Message, "잘못된 요청"
		case apperror.KindValidation:
			return http.StatusBadRequest, e.Error(), "요청 입력에서의 예외"
		case apperror.KindAuthentication:
			return http.StatusUnauthorized, msgUnauthorized, "인증 예외"
		case apperror.KindAuthorization:
			return http.StatusForbidden, msgForbidden, "접근 권한 불일치"
		case apperror.KindNotFound:
			return http.StatusNotFound, msgNotFound, "데이터 조회 예외"
		}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusBadRequest, http.StatusUnsupportedMediaType:
			return http.StatusBadRequest, msgMalformedInput, "요청 입력에서의 예외"
		case http.StatusUnauthorized:
			return http.StatusUnauthorized, msgUnauthorized, "인증 예외"
		case http.StatusForbidden:
			return http.StatusForbidden, msgForbidden, "접근 권한 불일치"
		case http.StatusNotFound:
			return http.StatusNotFound, msgNotFound, "데이터 조회 예외"
		}
		if he.Code < http.StatusInternalServerError {
			return he.Code, http.StatusText(he.Code), "요청 처리 예외"
		}
	}
	return http.StatusInternalServerError, msgInternal, "기타 예외 발생"
}

// errMalformed reports an unparsable path or query parameter.
func errMalformed(param string) error {
	return echo.NewHTTPError(http.StatusBadRequest, "invalid parameter: "+param)
}
