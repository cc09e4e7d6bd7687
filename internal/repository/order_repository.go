package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"chroma-store/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create persists an order and its snapshot line items as one row. The
// line items are stored as a document, never as references into the
// products table.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to marshal order items")
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	query := `
		INSERT INTO orders (id, name, email, phone_number, address, items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.pool.Exec(ctx, query,
		order.ID,
		order.Name,
		order.Email,
		order.PhoneNumber,
		order.Address,
		items,
		order.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to insert order")
		return fmt.Errorf("failed to insert order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Int("item_count", len(order.Items)).
		Msg("order created successfully")

	return nil
}

// GetAll retrieves every stored order in insertion order.
func (r *orderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT id, name, email, phone_number, address, items, created_at
		FROM orders
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		var items []byte

		err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.PhoneNumber, &o.Address, &items, &o.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		if err := json.Unmarshal(items, &o.Items); err != nil {
			r.logger.Error().Err(err).Msg("failed to unmarshal order items")
			return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}
