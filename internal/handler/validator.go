package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/room-escape-reservation/internal/apperror"
	"github.com/iliyamo/room-escape-reservation/internal/model"
)

// Validator adapts go-playground/validator to echo.Validator.  Field
// failures become one apperror.Validation whose messages come from the
// struct field's `message` tag.
type Validator struct {
	v *validator.Validate
}

// NewValidator registers the custom `clock` rule (HH:mm) on top of the
// stock validators.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := model.ParseClock(fl.Field().String())
		return err == nil
	})
	return &Validator{v: v}
}

func (cv *Validator) Validate(i interface{}) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	t := reflect.TypeOf(i)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	msgs := make([]string, 0, len(verrs))
	seen := map[string]bool{}
	for _, fe := range verrs {
		msg := fieldMessage(t, fe)
		if !seen[msg] {
			seen[msg] = true
			msgs = append(msgs, msg)
		}
	}
	return apperror.Validation(msgs...)
}

func fieldMessage(t reflect.Type, fe validator.FieldError) string {
	if f, ok := t.FieldByName(fe.StructField()); ok {
		if m := f.Tag.Get("message"); m != "" {
			return m
		}
	}
	return strings.ToLower(fe.Field()) + " is invalid"
}
