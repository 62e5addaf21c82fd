package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hrkit/vacation-api/internal/core/domain"
	"github.com/hrkit/vacation-api/internal/core/ports"
)

// Context keys set by Auth.
const (
	ClaimsKey    = "claims"
	AuthErrorKey = "auth_error"
)

// Auth extracts and verifies the bearer token when one is present, storing
// either the claims or the auth failure in the request context. It never
// rejects by itself: handlers decide whether authentication is required, so
// unknown actions can 404 before any auth check.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				c.Set(AuthErrorKey, domain.ErrNoToken)
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				c.Set(AuthErrorKey, domain.ErrNoToken)
				return next(c)
			}

			claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				c.Set(AuthErrorKey, domain.ErrInvalidToken)
				return next(c)
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}
