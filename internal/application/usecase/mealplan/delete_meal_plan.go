package mealplan

import (
	"context"
	"errors"
	"fmt"

	"github.com/smart-grocery/backend/internal/application/adapter"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
)

// DeleteMealPlanInput identifies the day to clear.
type DeleteMealPlanInput struct {
	Day string
}

// DeleteMealPlanUseCase removes the plan of a single day.
type DeleteMealPlanUseCase struct {
	mealPlanRepo adapter.MealPlanRepository
}

// NewDeleteMealPlanUseCase creates a new DeleteMealPlanUseCase instance.
func NewDeleteMealPlanUseCase(mealPlanRepo adapter.MealPlanRepository) *DeleteMealPlanUseCase {
	return &DeleteMealPlanUseCase{
		mealPlanRepo: mealPlanRepo,
	}
}

// Execute deletes the day's plan or returns a not found error.
func (uc *DeleteMealPlanUseCase) Execute(ctx context.Context, input DeleteMealPlanInput) error {
	if err := uc.mealPlanRepo.DeleteByDay(ctx, input.Day); err != nil {
		if errors.Is(err, domainerror.ErrMealPlanNotFound) {
			return domainerror.NewMealPlanError(
				domainerror.ErrCodeMealPlanNotFound,
				"No meal plan found for this day",
				err,
			)
		}
		return fmt.Errorf("failed to delete meal plan for %s: %w", input.Day, err)
	}

	return nil
}
