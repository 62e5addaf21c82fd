package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hrkit/vacation-api/internal/core/domain"
	"github.com/hrkit/vacation-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// TokenService issues and verifies HS256 bearer tokens signed with a single
// shared secret. Claims on the wire: user_id, username, role_id, iat, exp.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(claims ports.TokenClaims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  claims.UserID,
		"username": claims.Username,
		"role_id":  int(claims.RoleID),
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	})
	return t.SignedString(s.secret)
}

func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	parsed := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, parsed, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, _ := parsed["user_id"].(float64)
	username, _ := parsed["username"].(string)
	roleID, _ := parsed["role_id"].(float64)

	return &ports.TokenClaims{
		UserID:   int64(userID),
		Username: username,
		RoleID:   domain.Role(int(roleID)),
	}, nil
}
