package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopsphere/user-system/internal/core/domain"
	"github.com/shopsphere/user-system/internal/core/ports"
)

// CartHandler exposes the cart key-value store. The cart belongs to the
// authenticated user; the user ID always comes from the token, never from
// the payload.
type CartHandler struct {
	carts ports.CartRepository
}

func NewCartHandler(carts ports.CartRepository) *CartHandler {
	return &CartHandler{carts: carts}
}

type cartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

type putCartRequest struct {
	Items []cartItemRequest `json:"items" validate:"dive"`
}

func authedUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// Get handles GET /v1/cart.
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.carts.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// Put handles PUT /v1/cart. The stored cart is replaced wholesale.
func (h *CartHandler) Put(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req putCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	cart := &domain.Cart{UserID: userID, Items: make([]domain.CartItem, 0, len(req.Items))}
	for _, item := range req.Items {
		cart.Items = append(cart.Items, domain.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	if err := h.carts.Put(c.Request().Context(), userID, cart); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// Clear handles DELETE /v1/cart.
func (h *CartHandler) Clear(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	if err := h.carts.Clear(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
