package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"chroma-store/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create persists a product and its variant tree as one row.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	colors, err := json.Marshal(product.Colors)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to marshal variant tree")
		return fmt.Errorf("failed to marshal variant tree: %w", err)
	}

	query := `
		INSERT INTO products (id, product_image, title, description, price, colors, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.pool.Exec(ctx, query,
		product.ID,
		product.ProductImage,
		product.Title,
		product.Description,
		product.Price,
		colors,
		product.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", product.ID.String()).
			Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().
		Str("product_id", product.ID.String()).
		Int("color_count", len(product.Colors)).
		Msg("product created successfully")

	return nil
}

// GetAll retrieves every stored product in insertion order.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, product_image, title, description, price, colors, created_at
		FROM products
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, err
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// DeleteByID atomically removes and returns the product with the given ID.
func (r *productRepository) DeleteByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `
		DELETE FROM products
		WHERE id = $1
		RETURNING id, product_image, title, description, price, colors, created_at
	`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	r.logger.Debug().Str("product_id", id.String()).Msg("product deleted successfully")

	return p, nil
}

// scanProduct scans one product row, unpacking the JSONB variant tree.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	var colors []byte

	err := row.Scan(&p.ID, &p.ProductImage, &p.Title, &p.Description, &p.Price, &colors, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	if err := json.Unmarshal(colors, &p.Colors); err != nil {
		return nil, fmt.Errorf("failed to unmarshal variant tree: %w", err)
	}

	return &p, nil
}
