package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-grocery/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// The composite unique index enforces one budget per (month, year).
type BudgetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TotalBudget decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AmountSpent decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Month       string          `gorm:"type:varchar(9);not null;uniqueIndex:idx_budgets_period"`
	Year        int             `gorm:"not null;uniqueIndex:idx_budgets_period"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:          m.ID,
		TotalBudget: m.TotalBudget,
		AmountSpent: m.AmountSpent,
		Month:       m.Month,
		Year:        m.Year,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:          budget.ID,
		TotalBudget: budget.TotalBudget,
		AmountSpent: budget.AmountSpent,
		Month:       budget.Month,
		Year:        budget.Year,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}
}
