package ports

import "github.com/hrkit/vacation-api/internal/core/domain"

// TokenClaims is the identity carried by a verified bearer token.
type TokenClaims struct {
	UserID   int64
	Username string
	RoleID   domain.Role
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue returns a compact signed token embedding the claims plus
	// issued-at and expiry timestamps.
	Issue(claims TokenClaims) (string, error)
	// Verify checks signature and freshness and returns the embedded
	// claims, or domain.ErrInvalidToken.
	Verify(token string) (*TokenClaims, error)
}
