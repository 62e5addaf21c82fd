package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hrkit/vacation-api/internal/core/domain"
)

// NewHTTPErrorHandler returns the single top-level failure boundary for
// every request:
//   - validation error lists render as 422 {"errors": [...]}
//   - known domain errors map to their HTTP status with the error text as
//     the body
//   - echo's own 404 (unknown top-level path) renders the fixed
//     "404 Not Found" body
//   - anything else is a 500 carrying the error's message verbatim
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve domain.ValidationErrors
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]any{"errors": []string(ve)})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, map[string]string{"error": msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: router 404, bind failures, etc.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
			return http.StatusNotFound, "404 Not Found"
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrNoToken),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrVacationNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrMissingStatus):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Unexpected fault: log it and pass the message through, matching the
	// reference top-level catch.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Msg("unhandled error")

	return http.StatusInternalServerError, err.Error()
}
