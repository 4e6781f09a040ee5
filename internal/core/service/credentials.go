package service

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/ar-top/map-api/internal/core/domain"
	"github.com/ar-top/map-api/internal/core/ports"
)

// PasswordPolicy is the configurable minimum-strength rule applied at
// registration. It is deliberately not hard-coded here; values come from
// configuration.
type PasswordPolicy struct {
	// MinLength is the minimum password length.
	MinLength int
	// RequireMixed additionally demands at least one letter and one digit.
	RequireMixed bool
}

// CredentialValidator checks email/password shape and policy before any
// persistence action, and verifies stored credentials on login.
type CredentialValidator struct {
	users    ports.UserRepository
	hasher   ports.CredentialHasher
	tokens   ports.TokenService
	policy   PasswordPolicy
	validate *validator.Validate
}

func NewCredentialValidator(users ports.UserRepository, hasher ports.CredentialHasher, tokens ports.TokenService, policy PasswordPolicy) *CredentialValidator {
	if policy.MinLength <= 0 {
		policy.MinLength = 8
	}
	return &CredentialValidator{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		policy:   policy,
		validate: validator.New(),
	}
}

// ValidateRegister returns nil when the pair may be registered, or a
// ValidationError whose reason is safe to show to the client.
func (v *CredentialValidator) ValidateRegister(ctx context.Context, email, password string) error {
	if err := v.validate.Var(email, "required,email"); err != nil {
		return domain.NewValidationError("Email is invalid")
	}

	if _, err := v.users.FindByEmail(ctx, email); err == nil {
		return domain.NewValidationError("Email already in use")
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	if reason := v.checkPolicy(password); reason != "" {
		return domain.NewValidationError(reason)
	}
	return nil
}

// ValidateAuth checks the supplied credentials against the stored hash and,
// on success, obtains a fresh token. Failure reasons distinguish unknown
// emails from bad passwords; clients depend on the exact wording.
func (v *CredentialValidator) ValidateAuth(ctx context.Context, email, password string) (string, error) {
	user, err := v.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.NewValidationError("Email does not exist")
		}
		return "", err
	}

	if !v.hasher.Verify(password, user.PasswordHash) {
		return "", domain.NewValidationError("Incorrect password")
	}

	return v.tokens.Issue(user)
}

func (v *CredentialValidator) checkPolicy(password string) string {
	if len(password) < v.policy.MinLength {
		return fmt.Sprintf("Password must be at least %d characters", v.policy.MinLength)
	}
	if v.policy.RequireMixed {
		var hasLetter, hasDigit bool
		for _, r := range password {
			switch {
			case unicode.IsLetter(r):
				hasLetter = true
			case unicode.IsDigit(r):
				hasDigit = true
			}
		}
		if !hasLetter || !hasDigit {
			return "Password must contain at least one letter and one digit"
		}
	}
	return ""
}
