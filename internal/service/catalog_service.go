package service

import (
	"context"
	"fmt"
	"time"

	"chroma-store/internal/model"
	"chroma-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(productRepo repository.ProductRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// Create stores a full product document including its variant tree.
// No schema validation is performed; absent fields are stored
// zero-valued rather than rejected.
func (s *catalogService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, fmt.Errorf("product request is nil")
	}

	product := &model.Product{
		ID:           uuid.New(),
		ProductImage: req.ProductImage,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Colors:       req.Colors,
		CreatedAt:    time.Now(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("title", req.Title).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("title", product.Title).
		Int("color_count", len(product.Colors)).
		Msg("product created")

	return product, nil
}

// List retrieves every stored product.
func (s *catalogService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// Delete removes and returns the product with the given ID. Orders
// holding snapshots of the product are unaffected.
func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.DeleteByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id.String()).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")

	return product, nil
}
