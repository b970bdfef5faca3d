package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopsphere/user-system/internal/core/ports"
)

// UserHandler exposes the identity projection.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GetIdentityInfo handles GET /v1/users/:id. Only public fields are
// returned; the verifier never leaves the store layer.
func (h *UserHandler) GetIdentityInfo(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	}

	info, err := h.users.GetIdentityInfo(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}
