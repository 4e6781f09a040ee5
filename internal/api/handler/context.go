package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ar-top/map-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Claims middleware. A request
// whose token never verified has no email in context; that is the
// malformed-claims outcome, not a forbidden one.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return domain.Claims{}, domain.ErrMalformedRequest
	}
	return domain.Claims{Email: email}, nil
}

// ctxToken returns the raw bearer token, verified or not. The list endpoint
// re-verifies it through the token service itself.
func ctxToken(c echo.Context) string {
	token, _ := c.Get("auth_token").(string)
	return token
}
