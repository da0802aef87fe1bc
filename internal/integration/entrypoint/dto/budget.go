package dto

import (
	"github.com/smart-grocery/backend/internal/application/usecase/budget"
	"github.com/smart-grocery/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for setting a monthly budget.
type SetBudgetRequest struct {
	TotalBudget *float64 `json:"totalBudget"`
	Month       *string  `json:"month"`
	Year        *int     `json:"year"`
}

// AddExpenseRequest represents the request body for posting an expense.
// Month and Year default to the current period when omitted.
type AddExpenseRequest struct {
	Amount *float64 `json:"amount"`
	Month  *string  `json:"month"`
	Year   *int     `json:"year"`
}

// ToInput converts the request into the set budget use case input.
func (r SetBudgetRequest) ToInput() budget.SetBudgetInput {
	return budget.SetBudgetInput{
		TotalBudget: toDecimal(r.TotalBudget),
		Month:       r.Month,
		Year:        r.Year,
	}
}

// ToInput converts the request into the add expense use case input.
func (r AddExpenseRequest) ToInput() budget.AddExpenseInput {
	return budget.AddExpenseInput{
		Amount: toDecimal(r.Amount),
		Month:  r.Month,
		Year:   r.Year,
	}
}

// BudgetResponse represents a budget with its derived figures.
type BudgetResponse struct {
	TotalBudget     float64 `json:"totalBudget"`
	AmountSpent     float64 `json:"amountSpent"`
	RemainingBudget float64 `json:"remainingBudget"`
	PercentageSpent float64 `json:"percentageSpent"`
	Month           string  `json:"month"`
	Year            int     `json:"year"`
}

// BudgetMessageResponse wraps a budget with a confirmation message.
type BudgetMessageResponse struct {
	Message string         `json:"message"`
	Budget  BudgetResponse `json:"budget"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		TotalBudget:     b.TotalBudget.InexactFloat64(),
		AmountSpent:     b.AmountSpent.InexactFloat64(),
		RemainingBudget: b.RemainingBudget().InexactFloat64(),
		PercentageSpent: b.PercentageSpent().InexactFloat64(),
		Month:           b.Month,
		Year:            b.Year,
	}
}
