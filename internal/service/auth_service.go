package service

import (
	"context"
	"fmt"
	"time"

	"chroma-store/internal/model"
	"chroma-store/internal/repository"
	"chroma-store/internal/token"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// authService implements AuthService.
type authService struct {
	adminRepo repository.AdminRepository
	maker     token.Maker
	logger    zerolog.Logger
}

// NewAuthService creates a new auth service. The token maker is owned
// exclusively by this service.
func NewAuthService(adminRepo repository.AdminRepository, maker token.Maker, logger zerolog.Logger) AuthService {
	return &authService{
		adminRepo: adminRepo,
		maker:     maker,
		logger:    logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates an admin credential record with a bcrypt hash of the
// password. Registration fails when the email is already taken; the
// existing record is left untouched.
func (s *authService) Register(ctx context.Context, email, password string) (*model.Admin, error) {
	if email == "" || password == "" {
		s.logger.Warn().Msg("registration with missing email or password")
		return nil, model.ErrCredentialsMissing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.Admin{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if err == model.ErrDuplicateEmail {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", email).Msg("failed to register admin")
		return nil, fmt.Errorf("failed to register admin: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("admin registered")

	return admin, nil
}

// Login validates the credentials and issues a signed session token
// bound to the email. No token is minted on any failure path.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to look up admin")
		return "", fmt.Errorf("failed to look up admin: %w", err)
	}

	if admin == nil {
		s.logger.Warn().Str("email", email).Msg("login for unknown admin")
		return "", model.ErrAdminNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn().Str("email", email).Msg("login with wrong password")
		return "", model.ErrInvalidCredentials
	}

	accessToken, err := s.maker.Create(admin.Email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create session token")
		return "", fmt.Errorf("failed to create session token: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("admin logged in")

	return accessToken, nil
}

// VerifyToken checks a session token and returns its claims.
func (s *authService) VerifyToken(tokenString string) (*token.Claims, error) {
	return s.maker.Verify(tokenString)
}
