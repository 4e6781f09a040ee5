package domain

import "errors"

var (
	// ErrForbidden is returned when a request carries no claims at all.
	ErrForbidden = errors.New("Forbidden")

	// ErrMalformedRequest covers claims or body of the wrong shape.
	ErrMalformedRequest = errors.New("Malformed Request")

	// ErrMalformedCredentials is the login-specific malformed message,
	// kept distinct from ErrMalformedRequest for client compatibility.
	ErrMalformedCredentials = errors.New("Malformed Request; expecting email and password")

	// ErrMapNotFound masks both a genuinely missing map and one owned by
	// another user, so probing ids discloses nothing.
	ErrMapNotFound = errors.New("Map does not exist")

	// ErrTokenExpired is returned when a list-request token fails verification.
	ErrTokenExpired = errors.New("token expired")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// ValidationError carries a human-readable business-rule rejection suitable
// for direct client display (weak password, bad credentials, and so on).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidationError wraps reason in a ValidationError.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}
