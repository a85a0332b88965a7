package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Price carries two-place currency precision;
// the image URL and storage key are opaque values owned by the image storage
// collaborator and persisted here untouched.
type Product struct {
	ID          uuid.UUID
	Name        string  // Required, non-empty.
	Description string  // Optional free text.
	Price       float64 // Non-negative, two decimal places.
	Category    string  // Optional label used for catalog faceting.
	ImageURL    string
	ImageKey    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RoundPrice normalizes a currency amount to two decimal places.
func RoundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// HasImage reports whether an image blob is attached to this product.
func (p *Product) HasImage() bool {
	return p.ImageKey != ""
}
