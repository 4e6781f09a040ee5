package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ar-top/map-api/internal/core/domain"
)

// echoValidator bridges go-playground/validator into Echo so handlers can run
// struct-tag validation with c.Validate. Failures come back as a domain
// ValidationError, so anything a handler lets through still renders as the
// standard 422 envelope.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns the validator assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	reasons := make([]string, 0, len(ve))
	for _, fe := range ve {
		reasons = append(reasons, fieldReason(fe))
	}
	return domain.NewValidationError(strings.Join(reasons, "; "))
}

// fieldReason phrases a single failed rule the way the rest of the API talks
// about map fields. The tag set matches what the request schemas actually
// declare; anything else falls through to a generic phrasing.
func fieldReason(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return "Missing required field: " + field
	case "email":
		return "Email is invalid"
	default:
		return "Invalid value for field: " + field
	}
}
