package token

import (
	"testing"
	"time"

	"github.com/ar-top/map-api/internal/core/domain"
)

func TestJWTService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	tok, err := svc.Issue(&domain.User{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if tok == "" {
		t.Fatal("expected a token")
	}

	email, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if email != "a@x.com" {
		t.Fatalf("expected bound email, got %q", email)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	tok, _ := issuer.Issue(&domain.User{Email: "a@x.com"})
	if _, err := verifier.Verify(tok); err == nil {
		t.Fatal("token signed with another secret must not verify")
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", time.Nanosecond)

	tok, _ := svc.Issue(&domain.User{Email: "a@x.com"})
	time.Sleep(10 * time.Millisecond)

	if _, err := svc.Verify(tok); err == nil {
		t.Fatal("expired token must not verify")
	}
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	if _, err := svc.Verify("not-a-jwt"); err == nil {
		t.Fatal("garbage must not verify")
	}
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc := NewJWTService("secret", 0)
	if svc.ttl != 24*time.Hour {
		t.Fatalf("expected 24h default, got %v", svc.ttl)
	}
}
