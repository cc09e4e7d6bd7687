package service

import (
	"context"

	"chroma-store/internal/model"
	"chroma-store/internal/token"

	"github.com/google/uuid"
)

// CatalogService defines operations for catalogue management. There is
// no update operation; catalogue edits are delete plus recreate.
type CatalogService interface {
	// Create stores a full product document, assigning its ID.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// List retrieves every stored product.
	List(ctx context.Context) ([]model.Product, error)

	// Delete removes and returns the product with the given ID.
	Delete(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

// OrderService defines operations for order capture.
type OrderService interface {
	// Place stores a full order document, assigning its ID. Line items
	// are taken as the caller's snapshot and never checked against the
	// catalogue.
	Place(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// List retrieves every stored order.
	List(ctx context.Context) ([]model.Order, error)
}

// AuthService defines admin registration and login.
type AuthService interface {
	// Register creates a new admin credential record.
	Register(ctx context.Context, email, password string) (*model.Admin, error)

	// Login validates credentials and issues a session token.
	Login(ctx context.Context, email, password string) (string, error)

	// VerifyToken checks a session token and returns its claims.
	VerifyToken(tokenString string) (*token.Claims, error)
}
