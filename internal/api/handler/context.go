package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/hrkit/vacation-api/internal/api/middleware"
	"github.com/hrkit/vacation-api/internal/core/domain"
	"github.com/hrkit/vacation-api/internal/core/ports"
)

// requireAuth returns the verified claims injected by the Auth middleware,
// or the auth failure recorded there (missing vs invalid token map to
// different 401 bodies).
func requireAuth(c echo.Context) (*ports.TokenClaims, error) {
	if claims, ok := c.Get(middleware.ClaimsKey).(*ports.TokenClaims); ok {
		return claims, nil
	}
	if err, ok := c.Get(middleware.AuthErrorKey).(error); ok {
		return nil, err
	}
	return nil, domain.ErrNoToken
}

// requireRole authenticates and then checks that the caller's role
// satisfies the requirement. Admins satisfy any requirement.
func requireRole(c echo.Context, required domain.Role) (*ports.TokenClaims, error) {
	claims, err := requireAuth(c)
	if err != nil {
		return nil, err
	}
	if !claims.RoleID.Satisfies(required) {
		return nil, domain.ErrForbidden
	}
	return claims, nil
}
