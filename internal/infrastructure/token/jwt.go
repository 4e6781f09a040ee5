// Package token implements the session-token capability with signed JWTs.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ar-top/map-api/internal/core/domain"
)

// JWTService issues and verifies HS256 tokens carrying the user's email.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a fresh token bound to the user's email.
func (s *JWTService) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token, returning the bound email.
func (s *JWTService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return email, nil
}
