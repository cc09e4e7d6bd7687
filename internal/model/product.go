package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalogue entry together with its variant tree.
// A product owns its colors, each color owns its tones; nothing in the
// tree is shared between products.
type Product struct {
	ID           uuid.UUID       `json:"id"`
	ProductImage string          `json:"productImage"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Colors       []Color         `json:"colors"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Color is one purchasable colour option of a product.
type Color struct {
	Color string `json:"color"`
	Tones []Tone `json:"tones"`
}

// Tone is one tone under a colour. Shade is optional and may hold a URL
// or free text; absence is stored as the empty string.
type Tone struct {
	Tone  string `json:"tone"`
	Shade string `json:"shade,omitempty"`
}

// ProductRequest represents the request payload for creating a product.
// Duplicate colour or tone names are accepted as-is; the store never
// dedupes the tree.
type ProductRequest struct {
	ProductImage string          `json:"productImage"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Colors       []Color         `json:"colors"`
}
