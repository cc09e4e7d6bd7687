package repository

import (
	"context"

	"chroma-store/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for catalogue data access operations.
type ProductRepository interface {
	// Create persists a product, including its full variant tree, in a
	// single atomic write.
	Create(ctx context.Context, product *model.Product) error

	// GetAll retrieves every stored product. The whole catalogue is
	// materialized per call.
	GetAll(ctx context.Context) ([]model.Product, error)

	// DeleteByID atomically removes and returns the product with the
	// given ID. Returns nil, nil when no such product exists.
	DeleteByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create persists an order, including its snapshot line items, in a
	// single atomic write.
	Create(ctx context.Context, order *model.Order) error

	// GetAll retrieves every stored order.
	GetAll(ctx context.Context) ([]model.Order, error)
}

// AdminRepository defines the interface for admin credential access operations.
type AdminRepository interface {
	// Create persists an admin credential record. Returns
	// model.ErrDuplicateEmail when the email is already registered; the
	// uniqueness check and insert are a single atomic statement.
	Create(ctx context.Context, admin *model.Admin) error

	// GetByEmail retrieves the credential record for an email.
	// Returns nil, nil when no such admin exists.
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
}
