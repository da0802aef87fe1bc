// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GroceryItem represents a product held in the household inventory.
type GroceryItem struct {
	ID         uuid.UUID
	Name       string
	Brand      string
	Quantity   int
	Price      decimal.Decimal
	Category   string
	ExpiryDate time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewGroceryItem creates a new GroceryItem entity stamped with now.
func NewGroceryItem(
	name string,
	brand string,
	quantity int,
	price decimal.Decimal,
	category string,
	expiryDate time.Time,
	now time.Time,
) *GroceryItem {
	now = now.UTC()

	return &GroceryItem{
		ID:         uuid.New(),
		Name:       name,
		Brand:      brand,
		Quantity:   quantity,
		Price:      price,
		Category:   category,
		ExpiryDate: expiryDate.UTC(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsExpiredAt reports whether the item's expiry date is not after t.
func (g *GroceryItem) IsExpiredAt(t time.Time) bool {
	return !g.ExpiryDate.After(t)
}
