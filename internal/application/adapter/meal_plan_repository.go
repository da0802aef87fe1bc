package adapter

import (
	"context"

	"github.com/smart-grocery/backend/internal/domain/entity"
)

// MealPlanRepository defines the interface for meal plan persistence operations.
type MealPlanRepository interface {
	// UpsertByDay finds the plan for plan.Day or creates it.
	// On conflict meal, ingredients and update time are overwritten; id and
	// creation time are preserved. Returns the plan as stored after the write.
	UpsertByDay(ctx context.Context, plan *entity.MealPlan) (*entity.MealPlan, error)

	// FindAll retrieves every meal plan in storage order.
	FindAll(ctx context.Context) ([]*entity.MealPlan, error)

	// FindByDay retrieves the plan for a day, or nil when there is none.
	FindByDay(ctx context.Context, day string) (*entity.MealPlan, error)

	// DeleteByDay removes the plan for a day.
	// Returns ErrMealPlanNotFound when nothing was deleted.
	DeleteByDay(ctx context.Context, day string) error
}
