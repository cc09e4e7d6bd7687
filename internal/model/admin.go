package model

import "time"

// Admin represents an administrator credential record. PasswordHash is
// a bcrypt digest; the raw password is never stored.
type Admin struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CredentialsRequest represents the request payload for admin
// registration and login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
