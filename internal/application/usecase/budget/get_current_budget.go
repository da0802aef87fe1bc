package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/smart-grocery/backend/internal/application/adapter"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/domain/valueobject"
)

// GetCurrentBudgetUseCase fetches the budget of the clock's current month.
type GetCurrentBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewGetCurrentBudgetUseCase creates a new GetCurrentBudgetUseCase instance.
func NewGetCurrentBudgetUseCase(budgetRepo adapter.BudgetRepository, clock adapter.Clock) *GetCurrentBudgetUseCase {
	return &GetCurrentBudgetUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute returns the budget for the current month and year.
func (uc *GetCurrentBudgetUseCase) Execute(ctx context.Context) (*GetBudgetOutput, error) {
	period := valueobject.CurrentPeriod(uc.clock.Now())

	budget, err := uc.budgetRepo.FindByPeriod(ctx, period)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"No budget found for current month",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find current budget: %w", err)
	}

	return &GetBudgetOutput{
		Budget: budget,
	}, nil
}
