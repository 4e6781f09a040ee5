package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ar-top/map-api/internal/api/metrics"
	"github.com/ar-top/map-api/internal/core/domain"
	"github.com/ar-top/map-api/internal/core/ports"
)

const registerSuccess = "Account has been created! Check your email to validate your account."

// AccountHandler handles registration and login.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register creates a new account and logs it in immediately.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      200   {object}  registerResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	creds, err := bindCredentials(c, domain.ErrMalformedRequest)
	if err != nil {
		return err
	}

	result, err := h.accounts.Register(c.Request().Context(), creds)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusOK, registerResponse{
		Success:   registerSuccess,
		AuthToken: result.AuthToken,
	})
}

// Login verifies a login attempt and returns a fresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      200   {object}  loginResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	creds, err := bindCredentials(c, domain.ErrMalformedCredentials)
	if err != nil {
		metrics.LoginFailuresTotal.WithLabelValues("malformed").Inc()
		return err
	}

	result, err := h.accounts.Authenticate(c.Request().Context(), creds)
	if err != nil {
		metrics.LoginFailuresTotal.WithLabelValues("rejected").Inc()
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Email:     result.Email,
		AuthToken: result.AuthToken,
	})
}

// bindCredentials decodes the claims body. A request with no body at all is
// forbidden; a body of the wrong shape is malformed, with the endpoint's own
// malformed message.
func bindCredentials(c echo.Context, malformed error) (ports.Credentials, error) {
	if c.Request().Body == nil || c.Request().ContentLength == 0 {
		return ports.Credentials{}, domain.ErrForbidden
	}

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return ports.Credentials{}, malformed
	}
	if req.Email == "" || req.Password == "" {
		return ports.Credentials{}, malformed
	}

	return ports.Credentials{Email: req.Email, Password: req.Password}, nil
}
