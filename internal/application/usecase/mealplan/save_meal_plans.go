// Package mealplan contains weekly meal plan use cases.
package mealplan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
)

// MealPlanEntry is one submitted row of the weekly plan.
// Nil fields mark values absent from the request.
type MealPlanEntry struct {
	Day         *string
	Meal        *string
	Ingredients *string
}

// SaveMealPlansInput represents a batch of meal plan entries.
type SaveMealPlansInput struct {
	Entries []MealPlanEntry
}

// SaveMealPlansOutput holds the stored plans in the order they were submitted.
type SaveMealPlansOutput struct {
	MealPlans []*entity.MealPlan
}

// SaveMealPlansUseCase upserts a batch of meal plans keyed by day.
type SaveMealPlansUseCase struct {
	mealPlanRepo adapter.MealPlanRepository
	clock        adapter.Clock
}

// NewSaveMealPlansUseCase creates a new SaveMealPlansUseCase instance.
func NewSaveMealPlansUseCase(mealPlanRepo adapter.MealPlanRepository, clock adapter.Clock) *SaveMealPlansUseCase {
	return &SaveMealPlansUseCase{
		mealPlanRepo: mealPlanRepo,
		clock:        clock,
	}
}

// Execute drops incomplete entries and upserts the rest concurrently.
// Entries sharing a day race; whichever write commits last wins.
func (uc *SaveMealPlansUseCase) Execute(ctx context.Context, input SaveMealPlansInput) (*SaveMealPlansOutput, error) {
	now := uc.clock.Now()

	plans := make([]*entity.MealPlan, 0, len(input.Entries))
	for _, entry := range input.Entries {
		if plan := toMealPlan(entry, now); plan != nil {
			plans = append(plans, plan)
		}
	}

	if len(plans) == 0 {
		return nil, domainerror.NewMealPlanError(
			domainerror.ErrCodeNoValidMealPlans,
			"No valid meal plans to save",
			domainerror.ErrNoValidMealPlans,
		)
	}

	saved := make([]*entity.MealPlan, len(plans))
	g, gctx := errgroup.WithContext(ctx)
	for i, plan := range plans {
		i, plan := i, plan
		g.Go(func() error {
			stored, err := uc.mealPlanRepo.UpsertByDay(gctx, plan)
			if err != nil {
				return fmt.Errorf("failed to save meal plan for %s: %w", plan.Day, err)
			}
			saved[i] = stored
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SaveMealPlansOutput{
		MealPlans: saved,
	}, nil
}

// toMealPlan returns nil for entries without a day or with a blank meal or ingredient list.
func toMealPlan(entry MealPlanEntry, now time.Time) *entity.MealPlan {
	if entry.Day == nil || *entry.Day == "" || entry.Meal == nil || entry.Ingredients == nil {
		return nil
	}

	meal := strings.TrimSpace(*entry.Meal)
	ingredients := strings.TrimSpace(*entry.Ingredients)
	if meal == "" || ingredients == "" {
		return nil
	}

	return entity.NewMealPlan(*entry.Day, meal, ingredients, now)
}
