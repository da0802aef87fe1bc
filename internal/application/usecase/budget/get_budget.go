package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/domain/valueobject"
)

// GetBudgetInput identifies the period to look up.
type GetBudgetInput struct {
	Month string
	Year  int
}

// GetBudgetOutput carries the budget found for a period.
type GetBudgetOutput struct {
	Budget *entity.Budget
}

// GetBudgetUseCase fetches the budget of an explicit period.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute returns the budget for the period or a not found error.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	period := valueobject.NewPeriod(input.Month, input.Year)

	budget, err := uc.budgetRepo.FindByPeriod(ctx, period)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"No budget found for "+period.String(),
				err,
			)
		}
		return nil, fmt.Errorf("failed to find budget for %s: %w", period, err)
	}

	return &GetBudgetOutput{
		Budget: budget,
	}, nil
}
