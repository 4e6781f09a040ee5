package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ar-top/map-api/internal/core/domain"
)

func serveError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"malformed", domain.ErrMalformedRequest, http.StatusUnprocessableEntity, "Malformed Request"},
		{"malformed credentials", domain.ErrMalformedCredentials, http.StatusUnprocessableEntity, "Malformed Request; expecting email and password"},
		{"map not found", domain.ErrMapNotFound, http.StatusNotFound, "Map does not exist"},
		{"token expired", domain.ErrTokenExpired, http.StatusUnprocessableEntity, "token expired"},
		{"validation reason", domain.NewValidationError("Password must be at least 8 characters"), http.StatusUnprocessableEntity, "Password must be at least 8 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := serveError(t, tc.err)
			if code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, code)
			}
			if msg != tc.message {
				t.Errorf("expected %q, got %q", tc.message, msg)
			}
		})
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := serveError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "Internal server error" {
		t.Fatalf("internals must not leak, got %q", msg)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := serveError(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", code)
	}
	if msg != "short and stout" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_WrongOwnerAndMissingAreIdentical(t *testing.T) {
	// Both outcomes are the same sentinel, so the envelopes must match
	// byte for byte from the caller's perspective.
	codeA, msgA := serveError(t, domain.ErrMapNotFound)
	codeB, msgB := serveError(t, domain.ErrMapNotFound)
	if codeA != codeB || msgA != msgB {
		t.Fatalf("conflated responses differ: %d %q vs %d %q", codeA, msgA, codeB, msgB)
	}
	if codeA != http.StatusNotFound || msgA != "Map does not exist" {
		t.Fatalf("unexpected conflated envelope: %d %q", codeA, msgA)
	}
}
