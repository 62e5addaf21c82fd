package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hrkit/vacation-api/internal/core/domain"
)

// requestValidator wraps go-playground/validator and turns its per-field
// failures into the human-readable message list returned on 422 responses.
// All violations are collected; validation is not fail-fast.
type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// time.Parse tolerates non-padded fields ("2026-2-3"), so calendar dates
	// are round-tripped to enforce the exact YYYY-MM-DD shape.
	_ = v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		t, err := time.Parse("2006-01-02", s)
		return err == nil && t.Format("2006-01-02") == s
	})
	return &requestValidator{v: v}
}

// collect returns every violation in i as a message list, or nil when the
// struct is valid.
func (rv *requestValidator) collect(i any) domain.ValidationErrors {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.ValidationErrors{err.Error()}
	}

	msgs := make(domain.ValidationErrors, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return msgs
}

// fieldError converts a single ValidationError into the message the API
// contract promises for that field.
func fieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "password":
		return "Password is required"
	case "name":
		return "Name is required"
	case "email":
		return "Valid email is required"
	case "username":
		return "Username is required"
	case "date_from":
		if fe.Tag() == "required" {
			return "Start date (date_from) is required"
		}
		return "Start date (date_from) must be a valid date in format YYYY-MM-DD"
	case "date_to":
		if fe.Tag() == "required" {
			return "End date (date_to) is required"
		}
		return "End date (date_to) must be a valid date in format YYYY-MM-DD"
	case "reason":
		if fe.Tag() == "required" {
			return "Reason is required"
		}
		return "Reason must be at least 10 characters long"
	}

	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
	}
}
