package ports

import (
	"context"

	"github.com/shopsphere/user-system/internal/core/domain"
)

// CreateProductInput carries all data needed to create a catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	ImageURL    string
	Price       float64
	Quantity    int
}

// UpdateProductInput carries the replacement fields for an existing product.
type UpdateProductInput struct {
	Name        string
	Description string
	ImageURL    string
	Price       float64
	Quantity    int
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SearchProducts(ctx context.Context, name string) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
