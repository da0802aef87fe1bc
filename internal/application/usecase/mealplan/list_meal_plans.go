package mealplan

import (
	"context"
	"fmt"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
)

// ListMealPlansOutput represents every stored meal plan.
type ListMealPlansOutput struct {
	MealPlans []*entity.MealPlan
}

// ListMealPlansUseCase returns the whole weekly plan.
type ListMealPlansUseCase struct {
	mealPlanRepo adapter.MealPlanRepository
}

// NewListMealPlansUseCase creates a new ListMealPlansUseCase instance.
func NewListMealPlansUseCase(mealPlanRepo adapter.MealPlanRepository) *ListMealPlansUseCase {
	return &ListMealPlansUseCase{
		mealPlanRepo: mealPlanRepo,
	}
}

// Execute lists all meal plans.
func (uc *ListMealPlansUseCase) Execute(ctx context.Context) (*ListMealPlansOutput, error) {
	plans, err := uc.mealPlanRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}

	return &ListMealPlansOutput{
		MealPlans: plans,
	}, nil
}
