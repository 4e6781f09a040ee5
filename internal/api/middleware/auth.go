package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ar-top/map-api/internal/core/ports"
)

// Claims decodes the bearer token and injects what it can into the request
// context: the raw token under "auth_token" and, when verification succeeds,
// the bound email under "email". It never rejects the request itself —
// handlers decide between the malformed-claims and token-expired outcomes,
// which carry different envelopes.
func Claims(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			raw := parts[1]
			c.Set("auth_token", raw)

			if email, err := tokens.Verify(raw); err == nil {
				c.Set("email", email)
			}

			return next(c)
		}
	}
}
