package entity

import (
	"time"

	"github.com/google/uuid"
)

// MealPlan is the planned meal for a single day, keyed by the day name.
type MealPlan struct {
	ID          uuid.UUID
	Day         string
	Meal        string
	Ingredients string // Free text, typically comma separated
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewMealPlan creates a new MealPlan entity.
func NewMealPlan(day, meal, ingredients string, now time.Time) *MealPlan {
	now = now.UTC()

	return &MealPlan{
		ID:          uuid.New(),
		Day:         day,
		Meal:        meal,
		Ingredients: ingredients,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
