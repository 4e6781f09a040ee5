package ports

import (
	"context"

	"github.com/ar-top/map-api/internal/core/domain"
)

// TokenService issues and verifies opaque session tokens bound to a user.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns the email the token was issued for, or an error when
	// the token is invalid or expired.
	Verify(token string) (string, error)
}

// CredentialHasher hashes and checks passwords.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// LoginLimiter throttles authentication attempts per email.
type LoginLimiter interface {
	// Allow records an attempt and reports whether it is within the window.
	Allow(ctx context.Context, email string) (bool, error)
	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, email string) error
}
