package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopsphere/user-system/internal/api/metrics"
	"github.com/shopsphere/user-system/internal/core/ports"
)

// ProductHandler exposes catalog CRUD.
type ProductHandler struct {
	catalog ports.ProductService
}

func NewProductHandler(catalog ports.ProductService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type productRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Quantity    int     `json:"quantity"    validate:"gte=0"`
}

// List handles GET /v1/products. An optional ?name= query switches to a
// case-insensitive name search.
func (h *ProductHandler) List(c echo.Context) error {
	name := c.QueryParam("name")

	if name != "" {
		products, err := h.catalog.SearchProducts(c.Request().Context(), name)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, products)
	}

	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /v1/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /v1/products (admin only).
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return err
	}

	metrics.ProductsMutatedTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /v1/products/:id (admin only).
func (h *ProductHandler) Update(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.catalog.UpdateProduct(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return err
	}

	metrics.ProductsMutatedTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /v1/products/:id (admin only).
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.catalog.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ProductsMutatedTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
