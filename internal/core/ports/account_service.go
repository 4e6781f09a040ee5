package ports

import "context"

// Credentials is the claims payload carried by register and login requests.
type Credentials struct {
	Email    string
	Password string
}

// RegisterResult is returned after a successful registration (auto-login).
type RegisterResult struct {
	AuthToken string
}

// AuthResult is returned after a successful login.
type AuthResult struct {
	Email     string
	AuthToken string
}

// AccountService defines registration and authentication use cases.
type AccountService interface {
	Register(ctx context.Context, creds Credentials) (*RegisterResult, error)
	Authenticate(ctx context.Context, creds Credentials) (*AuthResult, error)
}
