package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ar-top/map-api/internal/core/domain"
	"github.com/ar-top/map-api/internal/core/ports"
)

// AccountService implements registration and authentication.
type AccountService struct {
	users     ports.UserRepository
	hasher    ports.CredentialHasher
	tokens    ports.TokenService
	validator *CredentialValidator
	limiter   ports.LoginLimiter
	logger    zerolog.Logger
}

func NewAccountService(users ports.UserRepository, hasher ports.CredentialHasher, tokens ports.TokenService, validator *CredentialValidator, limiter ports.LoginLimiter, logger zerolog.Logger) *AccountService {
	return &AccountService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
		limiter:   limiter,
		logger:    logger,
	}
}

// Register validates the credential pair, persists exactly one new user and
// issues an auth token so the client is logged in immediately. The password
// is hashed before the insert; a token failure after the insert leaves a
// fully usable account behind, so the record is never half-created.
func (s *AccountService) Register(ctx context.Context, creds ports.Credentials) (*ports.RegisterResult, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, domain.ErrMalformedRequest
	}

	if err := s.validator.ValidateRegister(ctx, creds.Email, creds.Password); err != nil {
		s.logger.Error().Err(err).Str("email", creds.Email).Msg("registration rejected")
		return nil, err
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Email:        creds.Email,
		PasswordHash: hash,
		Roles:        []string{domain.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// A concurrent registration may win the unique-index race.
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.NewValidationError("Email already in use")
		}
		s.logger.Error().Err(err).Str("email", creds.Email).Msg("failed to create user")
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", creds.Email).Msg("failed to issue token after registration")
		return nil, err
	}

	s.logger.Info().Str("email", creds.Email).Msg("account created")
	return &ports.RegisterResult{AuthToken: token}, nil
}

// Authenticate verifies a login attempt and returns the email with a fresh
// token. Attempts are throttled per email when a limiter is configured.
func (s *AccountService) Authenticate(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, domain.ErrMalformedCredentials
	}

	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, creds.Email)
		if err != nil {
			// The limiter is protective infrastructure; an unreachable
			// Redis must not lock every user out.
			s.logger.Error().Err(err).Msg("login limiter unavailable")
		} else if !ok {
			return nil, domain.NewValidationError("too many login attempts")
		}
	}

	token, err := s.validator.ValidateAuth(ctx, creds.Email, creds.Password)
	if err != nil {
		s.logger.Error().Err(err).Str("email", creds.Email).Msg("authentication rejected")
		return nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, creds.Email); err != nil {
			s.logger.Error().Err(err).Msg("failed to reset login limiter")
		}
	}

	return &ports.AuthResult{Email: creds.Email, AuthToken: token}, nil
}
