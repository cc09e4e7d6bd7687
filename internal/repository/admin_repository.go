package repository

import (
	"context"
	"errors"
	"fmt"

	"chroma-store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// adminRepository implements the AdminRepository interface using PostgreSQL.
type adminRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAdminRepository creates a new PostgreSQL-backed admin repository.
func NewAdminRepository(pool *pgxpool.Pool, logger zerolog.Logger) AdminRepository {
	return &adminRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "admin").Logger(),
	}
}

// Create persists an admin credential record. Uniqueness is enforced by
// the primary key, so two concurrent registrations with the same email
// cannot both succeed.
func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	query := `
		INSERT INTO admins (email, password_hash, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query, admin.Email, admin.PasswordHash, admin.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Warn().Str("email", admin.Email).Msg("duplicate admin registration")
			return model.ErrDuplicateEmail
		}
		r.logger.Error().Err(err).Str("email", admin.Email).Msg("failed to insert admin")
		return fmt.Errorf("failed to insert admin: %w", err)
	}

	r.logger.Debug().Str("email", admin.Email).Msg("admin created successfully")

	return nil
}

// GetByEmail retrieves the credential record for an email. The match is
// case-sensitive.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	query := `
		SELECT email, password_hash, created_at
		FROM admins
		WHERE email = $1
	`

	var a model.Admin
	err := r.pool.QueryRow(ctx, query, email).Scan(&a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("email", email).Msg("admin not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query admin")
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	return &a, nil
}
