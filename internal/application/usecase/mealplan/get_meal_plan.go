package mealplan

import (
	"context"
	"fmt"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
)

// GetMealPlanInput identifies the day to look up.
type GetMealPlanInput struct {
	Day string
}

// GetMealPlanOutput carries the plan for a day. MealPlan is nil when the day has none.
type GetMealPlanOutput struct {
	MealPlan *entity.MealPlan
}

// GetMealPlanUseCase fetches the plan of a single day.
type GetMealPlanUseCase struct {
	mealPlanRepo adapter.MealPlanRepository
}

// NewGetMealPlanUseCase creates a new GetMealPlanUseCase instance.
func NewGetMealPlanUseCase(mealPlanRepo adapter.MealPlanRepository) *GetMealPlanUseCase {
	return &GetMealPlanUseCase{
		mealPlanRepo: mealPlanRepo,
	}
}

// Execute returns the day's plan. A missing plan is not an error.
func (uc *GetMealPlanUseCase) Execute(ctx context.Context, input GetMealPlanInput) (*GetMealPlanOutput, error) {
	plan, err := uc.mealPlanRepo.FindByDay(ctx, input.Day)
	if err != nil {
		return nil, fmt.Errorf("failed to find meal plan for %s: %w", input.Day, err)
	}

	return &GetMealPlanOutput{
		MealPlan: plan,
	}, nil
}
