package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopsphere/user-system/internal/core/domain"
	"github.com/shopsphere/user-system/internal/core/ports"
)

// CatalogService implements catalog CRUD over a ProductRepository.
type CatalogService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) SearchProducts(ctx context.Context, name string) ([]*domain.Product, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *CatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       input.Price,
		Quantity:    input.Quantity,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       input.Price,
		Quantity:    input.Quantity,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
