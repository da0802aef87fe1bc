package dto

import (
	"time"

	"github.com/smart-grocery/backend/internal/application/usecase/mealplan"
	"github.com/smart-grocery/backend/internal/domain/entity"
)

// MealPlanRequest represents one entry of the weekly plan submitted by the client.
type MealPlanRequest struct {
	Day         *string `json:"day"`
	Meal        *string `json:"meal"`
	Ingredients *string `json:"ingredients"`
}

// MealPlanResponse represents a stored meal plan in API responses.
type MealPlanResponse struct {
	ID          string    `json:"id"`
	Day         string    `json:"day"`
	Meal        string    `json:"meal"`
	Ingredients string    `json:"ingredients"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SaveMealPlansResponse represents the response for saving the weekly plan.
type SaveMealPlansResponse struct {
	Message string             `json:"message"`
	Meals   []MealPlanResponse `json:"meals"`
}

// ToSaveMealPlansInput converts submitted entries into the save use case input.
func ToSaveMealPlansInput(requests []MealPlanRequest) mealplan.SaveMealPlansInput {
	entries := make([]mealplan.MealPlanEntry, len(requests))
	for i, req := range requests {
		entries[i] = mealplan.MealPlanEntry{
			Day:         req.Day,
			Meal:        req.Meal,
			Ingredients: req.Ingredients,
		}
	}
	return mealplan.SaveMealPlansInput{Entries: entries}
}

// ToMealPlanResponse converts a domain MealPlan entity to a MealPlanResponse DTO.
func ToMealPlanResponse(plan *entity.MealPlan) MealPlanResponse {
	return MealPlanResponse{
		ID:          plan.ID.String(),
		Day:         plan.Day,
		Meal:        plan.Meal,
		Ingredients: plan.Ingredients,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}

// ToMealPlanListResponse converts a slice of MealPlan entities to response DTOs.
func ToMealPlanListResponse(plans []*entity.MealPlan) []MealPlanResponse {
	responses := make([]MealPlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = ToMealPlanResponse(plan)
	}
	return responses
}
