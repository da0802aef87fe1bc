// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-grocery/backend/internal/domain/entity"
)

// GroceryItemModel represents the grocery_items table in the database.
type GroceryItemModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"type:text;not null"`
	Brand      string          `gorm:"type:text;not null"`
	Quantity   int             `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category   string          `gorm:"type:text;not null;index"`
	ExpiryDate time.Time       `gorm:"not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GroceryItemModel.
func (GroceryItemModel) TableName() string {
	return "grocery_items"
}

// ToEntity converts a GroceryItemModel to a domain GroceryItem entity.
func (m *GroceryItemModel) ToEntity() *entity.GroceryItem {
	return &entity.GroceryItem{
		ID:         m.ID,
		Name:       m.Name,
		Brand:      m.Brand,
		Quantity:   m.Quantity,
		Price:      m.Price,
		Category:   m.Category,
		ExpiryDate: m.ExpiryDate.UTC(),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// GroceryItemFromEntity creates a GroceryItemModel from a domain GroceryItem entity.
func GroceryItemFromEntity(item *entity.GroceryItem) *GroceryItemModel {
	return &GroceryItemModel{
		ID:         item.ID,
		Name:       item.Name,
		Brand:      item.Brand,
		Quantity:   item.Quantity,
		Price:      item.Price,
		Category:   item.Category,
		ExpiryDate: item.ExpiryDate,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}
