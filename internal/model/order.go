package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order represents a customer order. Contact fields are free text; no
// format validation is performed on them.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber"`
	Address     string      `json:"address"`
	Items       []OrderLine `json:"order"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// OrderLine is a frozen copy of the selected product and variant fields
// at placement time. ProductID is an unvalidated free-text reference;
// deleting or recreating the product later never alters the line.
type OrderLine struct {
	ProductID   string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Color       string          `json:"color"`
	Tone        string          `json:"tone"`
	Shade       string          `json:"shade,omitempty"`
}

// OrderRequest represents the request payload for placing an order. The
// caller assembles the line items from catalogue data beforehand.
type OrderRequest struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber"`
	Address     string      `json:"address"`
	Items       []OrderLine `json:"order"`
}
