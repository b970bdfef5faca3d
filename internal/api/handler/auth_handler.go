package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopsphere/user-system/internal/api/metrics"
	"github.com/shopsphere/user-system/internal/core/domain"
	"github.com/shopsphere/user-system/internal/core/ports"
)

// AuthHandler exposes registration and login over HTTP.
type AuthHandler struct {
	users  ports.UserService
	issuer ports.TokenIssuer
}

func NewAuthHandler(users ports.UserService, issuer ports.TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type registerResponse struct {
	User *domain.IdentityInfo `json:"user"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string               `json:"token"`
	User  *domain.IdentityInfo `json:"user"`
}

// Register handles POST /auth/register. Credential format rules live in the
// core policy, not here; the handler only decodes the payload.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	identity, err := h.users.Register(c.Request().Context(), req.Username, req.Password, req.FullName)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registrationResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, registerResponse{User: identity.Info()})
}

// Login handles POST /auth/login: authenticates the credential pair and
// issues a signed token on success.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	identity, err := h.users.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	token, err := h.issuer.Issue(identity)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: identity.Info()})
}

func registrationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return "username_taken"
	case errors.Is(err, domain.ErrValidation):
		return "validation_failed"
	default:
		return "error"
	}
}
