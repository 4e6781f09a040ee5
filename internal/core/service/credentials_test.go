package service

import (
	"context"
	"testing"

	"github.com/ar-top/map-api/internal/core/domain"
)

func TestCredentialValidator_PolicyDefaults(t *testing.T) {
	v := NewCredentialValidator(newStubUserRepo(), fakeHasher{}, &fakeTokens{}, PasswordPolicy{})
	if v.policy.MinLength != 8 {
		t.Fatalf("expected default min length 8, got %d", v.policy.MinLength)
	}
}

func TestCredentialValidator_ConfiguredMinLength(t *testing.T) {
	v := NewCredentialValidator(newStubUserRepo(), fakeHasher{}, &fakeTokens{}, PasswordPolicy{MinLength: 12})

	err := v.ValidateRegister(context.Background(), "a@x.com", "Short1Pass")
	if err == nil {
		t.Fatal("expected rejection below configured length")
	}
	if err.Error() != "Password must be at least 12 characters" {
		t.Fatalf("unexpected reason: %q", err)
	}
}

func TestCredentialValidator_MixedClassOptional(t *testing.T) {
	v := NewCredentialValidator(newStubUserRepo(), fakeHasher{}, &fakeTokens{}, PasswordPolicy{MinLength: 8, RequireMixed: false})

	if err := v.ValidateRegister(context.Background(), "a@x.com", "onlyletters"); err != nil {
		t.Fatalf("letters-only must pass when mixed classes are not required: %v", err)
	}
}

func TestCredentialValidator_AuthIssuesToken(t *testing.T) {
	users := newStubUserRepo()
	v := NewCredentialValidator(users, fakeHasher{}, &fakeTokens{}, PasswordPolicy{})

	hashed, _ := fakeHasher{}.Hash("Str0ngPass")
	_, _ = users.Create(context.Background(), &domain.User{Email: "a@x.com", PasswordHash: hashed})

	token, err := v.ValidateAuth(context.Background(), "a@x.com", "Str0ngPass")
	if err != nil {
		t.Fatalf("auth failed: %v", err)
	}
	if token != "token-for-a@x.com" {
		t.Fatalf("unexpected token: %q", token)
	}
}
