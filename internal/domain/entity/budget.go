package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-grocery/backend/internal/domain/valueobject"
)

var (
	// FullBudgetPercentage is the share spent when the whole allowance is used.
	FullBudgetPercentage = decimal.NewFromInt(100)

	// BudgetWarningPercentage is the share spent at which a budget counts as near its limit.
	BudgetWarningPercentage = decimal.NewFromInt(80)
)

// Budget is the spending allowance for one calendar month.
// RemainingBudget and PercentageSpent are derived and never stored.
type Budget struct {
	ID          uuid.UUID
	TotalBudget decimal.Decimal
	AmountSpent decimal.Decimal
	Month       string
	Year        int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a Budget for the given period with nothing spent yet.
func NewBudget(totalBudget decimal.Decimal, period valueobject.Period, now time.Time) *Budget {
	now = now.UTC()

	return &Budget{
		ID:          uuid.New(),
		TotalBudget: totalBudget,
		AmountSpent: decimal.Zero,
		Month:       period.Month,
		Year:        period.Year,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Period returns the month and year the budget covers.
func (b *Budget) Period() valueobject.Period {
	return valueobject.NewPeriod(b.Month, b.Year)
}

// RemainingBudget returns TotalBudget - AmountSpent. It may be negative.
func (b *Budget) RemainingBudget() decimal.Decimal {
	return b.TotalBudget.Sub(b.AmountSpent)
}

// PercentageSpent returns AmountSpent as a percentage of TotalBudget,
// or zero when no budget has been allotted.
func (b *Budget) PercentageSpent() decimal.Decimal {
	if !b.TotalBudget.IsPositive() {
		return decimal.Zero
	}
	return b.AmountSpent.Div(b.TotalBudget).Mul(FullBudgetPercentage)
}

// AddExpense increases the amount spent.
func (b *Budget) AddExpense(amount decimal.Decimal, now time.Time) {
	b.AmountSpent = b.AmountSpent.Add(amount)
	b.UpdatedAt = now.UTC()
}
