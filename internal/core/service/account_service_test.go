package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ar-top/map-api/internal/core/domain"
	"github.com/ar-top/map-api/internal/core/ports"
)

func newAccountService(users *stubUserRepo, limiter ports.LoginLimiter) *AccountService {
	tokens := &fakeTokens{}
	hasher := fakeHasher{}
	validator := NewCredentialValidator(users, hasher, tokens, PasswordPolicy{MinLength: 8, RequireMixed: true})
	return NewAccountService(users, hasher, tokens, validator, limiter, zerolog.Nop())
}

func TestAccountService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	svc := newAccountService(users, nil)

	result, err := svc.Register(context.Background(), ports.Credentials{Email: "a@x.com", Password: "Str0ngPass"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.AuthToken == "" {
		t.Fatal("expected auth token for auto-login")
	}

	if len(users.users) != 1 {
		t.Fatalf("expected exactly 1 user, got %d", len(users.users))
	}
	stored := users.users["a@x.com"]
	if stored.PasswordHash == "Str0ngPass" {
		t.Fatal("expected password to be hashed")
	}
	if len(stored.Roles) != 1 || stored.Roles[0] != domain.RoleUser {
		t.Fatalf("unexpected roles: %v", stored.Roles)
	}

	// The same credentials must authenticate afterwards.
	auth, err := svc.Authenticate(context.Background(), ports.Credentials{Email: "a@x.com", Password: "Str0ngPass"})
	if err != nil {
		t.Fatalf("Authenticate after Register failed: %v", err)
	}
	if auth.Email != "a@x.com" || auth.AuthToken == "" {
		t.Fatalf("unexpected auth result: %+v", auth)
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc := newAccountService(users, nil)

	if _, err := svc.Register(context.Background(), ports.Credentials{Email: "a@x.com", Password: "Str0ngPass"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), ports.Credentials{Email: "a@x.com", Password: "Other1Pass"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Reason != "Email already in use" {
		t.Fatalf("unexpected reason: %q", ve.Reason)
	}
	if len(users.users) != 1 {
		t.Fatalf("duplicate registration must not create a second user, got %d", len(users.users))
	}
}

func TestAccountService_Register_WrappedDuplicateFromStore(t *testing.T) {
	users := newStubUserRepo()
	svc := newAccountService(users, nil)

	// The store reports the lost unique-index race wrapped in its own context.
	users.createErr = fmt.Errorf("insert user: %w", domain.ErrUserExists)

	_, err := svc.Register(context.Background(), ports.Credentials{Email: "a@x.com", Password: "Str0ngPass"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Reason != "Email already in use" {
		t.Fatalf("unexpected reason: %q", ve.Reason)
	}
}

func TestAccountService_Register_Validation(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		reason   string
	}{
		{"invalid email", "not-an-email", "Str0ngPass", "Email is invalid"},
		{"short password", "a@x.com", "Ab1", "Password must be at least 8 characters"},
		{"no digit", "a@x.com", "OnlyLetters", "Password must contain at least one letter and one digit"},
		{"no letter", "a@x.com", "1234567890", "Password must contain at least one letter and one digit"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := newStubUserRepo()
			svc := newAccountService(users, nil)

			_, err := svc.Register(context.Background(), ports.Credentials{Email: tc.email, Password: tc.password})
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Reason != tc.reason {
				t.Fatalf("expected reason %q, got %q", tc.reason, ve.Reason)
			}
			if len(users.users) != 0 {
				t.Fatal("rejected registration must not persist a user")
			}
		})
	}
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	svc := newAccountService(newStubUserRepo(), nil)

	if _, err := svc.Register(context.Background(), ports.Credentials{Email: "a@x.com"}); !errors.Is(err, domain.ErrMalformedRequest) {
		t.Fatalf("expected ErrMalformedRequest, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.Credentials{Password: "Str0ngPass"}); !errors.Is(err, domain.ErrMalformedRequest) {
		t.Fatalf("expected ErrMalformedRequest, got %v", err)
	}
}

func TestAccountService_Authenticate_UnknownEmail(t *testing.T) {
	svc := newAccountService(newStubUserRepo(), nil)

	_, err := svc.Authenticate(context.Background(), ports.Credentials{Email: "ghost@x.com", Password: "whatever1"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Reason != "Email does not exist" {
		t.Fatalf("unexpected reason: %q", ve.Reason)
	}
}

func TestAccountService_Authenticate_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := newAccountService(users, nil)

	_, _ = svc.Register(context.Background(), ports.Credentials{Email: "a@x.com", Password: "Str0ngPass"})

	_, err := svc.Authenticate(context.Background(), ports.Credentials{Email: "a@x.com", Password: "WrongPass1"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Reason != "Incorrect password" {
		t.Fatalf("unexpected reason: %q", ve.Reason)
	}
}

func TestAccountService_Authenticate_MissingFields(t *testing.T) {
	svc := newAccountService(newStubUserRepo(), nil)

	if _, err := svc.Authenticate(context.Background(), ports.Credentials{Email: "a@x.com"}); !errors.Is(err, domain.ErrMalformedCredentials) {
		t.Fatalf("expected ErrMalformedCredentials, got %v", err)
	}
}

func TestAccountService_Authenticate_RateLimited(t *testing.T) {
	users := newStubUserRepo()
	limiter := &stubLimiter{allowed: false}
	svc := newAccountService(users, limiter)

	_, _ = svc.Register(context.Background(), ports.Credentials{Email: "a@x.com", Password: "Str0ngPass"})

	_, err := svc.Authenticate(context.Background(), ports.Credentials{Email: "a@x.com", Password: "Str0ngPass"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Reason != "too many login attempts" {
		t.Fatalf("unexpected reason: %q", ve.Reason)
	}
}

func TestAccountService_Authenticate_ResetsLimiterOnSuccess(t *testing.T) {
	users := newStubUserRepo()
	limiter := &stubLimiter{allowed: true}
	svc := newAccountService(users, limiter)

	_, _ = svc.Register(context.Background(), ports.Credentials{Email: "a@x.com", Password: "Str0ngPass"})

	if _, err := svc.Authenticate(context.Background(), ports.Credentials{Email: "a@x.com", Password: "Str0ngPass"}); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected limiter reset once, got %d", limiter.resets)
	}
}

func TestAccountService_Authenticate_LimiterUnavailable(t *testing.T) {
	users := newStubUserRepo()
	limiter := &stubLimiter{allowErr: errors.New("redis down")}
	svc := newAccountService(users, limiter)

	_, _ = svc.Register(context.Background(), ports.Credentials{Email: "a@x.com", Password: "Str0ngPass"})

	// A broken limiter must not lock users out.
	if _, err := svc.Authenticate(context.Background(), ports.Credentials{Email: "a@x.com", Password: "Str0ngPass"}); err != nil {
		t.Fatalf("authenticate should succeed when limiter is down, got %v", err)
	}
}
