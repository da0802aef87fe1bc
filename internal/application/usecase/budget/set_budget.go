package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/domain/valueobject"
)

// SetBudgetInput represents the input for setting a monthly budget.
type SetBudgetInput struct {
	TotalBudget *decimal.Decimal
	Month       *string
	Year        *int
}

// SetBudgetOutput represents the output of setting a monthly budget.
type SetBudgetOutput struct {
	Budget *entity.Budget
}

// SetBudgetUseCase creates the budget for a period or replaces its total.
type SetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(budgetRepo adapter.BudgetRepository, clock adapter.Clock) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute validates the input and upserts the budget keyed on its period.
// An existing budget keeps its amount spent.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if !isPositive(input.TotalBudget) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidTotalBudget,
			"Total budget must be a positive number",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if input.Month == nil || strings.TrimSpace(*input.Month) == "" || input.Year == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingPeriod,
			"Month and year are required",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	now := uc.clock.Now()
	period := valueobject.NewPeriod(strings.TrimSpace(*input.Month), *input.Year)
	if err := validatePeriodForWrite(period, now); err != nil {
		return nil, err
	}

	stored, err := uc.budgetRepo.UpsertTotal(ctx, entity.NewBudget(*input.TotalBudget, period, now))
	if err != nil {
		return nil, fmt.Errorf("failed to save budget for %s: %w", period, err)
	}

	return &SetBudgetOutput{
		Budget: stored,
	}, nil
}
