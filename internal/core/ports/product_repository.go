package ports

import (
	"context"

	"github.com/shopsphere/user-system/internal/core/domain"
)

// ProductRepository defines persistence operations for the catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	SearchByName(ctx context.Context, name string) ([]*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
