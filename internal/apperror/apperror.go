// Package apperror defines the closed set of domain error kinds the
// service layer can fail with.  The HTTP boundary matches on Kind to
// pick a status code and a user-facing message.
package apperror

import (
	"errors"
	"strings"
)

// Kind identifies one variant of the domain error taxonomy.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	}
	return "unknown"
}

// Error is a domain error.  Message is the detailed message; for
// Authentication, Authorization and NotFound it is logged but not shown
// to the caller.  Fields carries one message per invalid request field
// for KindValidation.
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
}

func (e *Error) Error() string {
	if e.Kind == KindValidation && len(e.Fields) > 0 {
		return strings.Join(e.Fields, ", ")
	}
	return e.Message
}

func BadRequest(msg string) *Error { return &Error{Kind: KindBadRequest, Message: msg} }
func Authentication(msg string) *Error { return &Error{Kind: KindAuthentication, Message: msg} }
func Authorization(msg string) *Error { return &Error{Kind: KindAuthorization, Message: msg} }
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// Validation groups field-level messages into one error.
func Validation(fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: strings.Join(fields, ", "), Fields: fields}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
