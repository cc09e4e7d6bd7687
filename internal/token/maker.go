package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Token verification errors.
var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the payload carried by a session token. A token is bound to
// the email of the admin it was issued for.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// Maker mints and verifies session tokens. Only the auth service holds
// a Maker; no other component can issue tokens.
type Maker interface {
	// Create issues a signed token bound to the given email.
	Create(email string) (string, error)

	// Verify checks format, signature and expiry, returning the claims
	// of a valid token.
	Verify(tokenString string) (*Claims, error)
}

// jwtMaker implements Maker with HMAC-SHA256 signed JWTs.
type jwtMaker struct {
	secret   []byte
	lifetime time.Duration
}

// NewJWTMaker creates a Maker signing with the given secret. Tokens
// expire after the given lifetime.
func NewJWTMaker(secret string, lifetime time.Duration) (Maker, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret must not be empty")
	}
	return &jwtMaker{secret: []byte(secret), lifetime: lifetime}, nil
}

func (m *jwtMaker) Create(email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.lifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (m *jwtMaker) Verify(tokenString string) (*Claims, error) {
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, keyFunc)
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
