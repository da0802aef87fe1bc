package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/domain/valueobject"
)

// AddExpenseInput represents an expense posting.
// A nil Month or Year defaults to the current one.
type AddExpenseInput struct {
	Amount *decimal.Decimal
	Month  *string
	Year   *int
}

// AddExpenseOutput carries the budget after the expense was applied.
type AddExpenseOutput struct {
	Budget *entity.Budget
}

// AddExpenseUseCase adds an amount to a period's spending.
//
// The read and the write are separate statements, so two concurrent postings
// to the same period can lose one of the increments.
type AddExpenseUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(budgetRepo adapter.BudgetRepository, clock adapter.Clock) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute increments the amount spent of the resolved period's budget.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if !isPositive(input.Amount) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidExpense,
			"Amount must be a positive number",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	now := uc.clock.Now()
	period := valueobject.CurrentPeriod(now)
	if input.Month != nil && strings.TrimSpace(*input.Month) != "" {
		period.Month = strings.TrimSpace(*input.Month)
	}
	if input.Year != nil {
		period.Year = *input.Year
	}

	budget, err := uc.budgetRepo.FindByPeriod(ctx, period)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"No budget found for the specified month",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find budget for %s: %w", period, err)
	}

	if err := validatePeriodForWrite(budget.Period(), now); err != nil {
		return nil, err
	}

	budget.AddExpense(*input.Amount, now)

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget for %s: %w", period, err)
	}

	return &AddExpenseOutput{
		Budget: budget,
	}, nil
}
