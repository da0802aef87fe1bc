package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/smart-grocery/backend/internal/application/adapter"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/domain/valueobject"
)

// DeleteBudgetInput identifies the period to delete.
type DeleteBudgetInput struct {
	Month string
	Year  int
}

// DeleteBudgetUseCase removes the budget of a period.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute deletes the budget or returns a not found error.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	period := valueobject.NewPeriod(input.Month, input.Year)

	if err := uc.budgetRepo.DeleteByPeriod(ctx, period); err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"No budget found for "+period.String(),
				err,
			)
		}
		return fmt.Errorf("failed to delete budget for %s: %w", period, err)
	}

	return nil
}
