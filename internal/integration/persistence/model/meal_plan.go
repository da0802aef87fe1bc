package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/smart-grocery/backend/internal/domain/entity"
)

// MealPlanModel represents the meal_plans table in the database.
type MealPlanModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Day         string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Meal        string    `gorm:"type:text;not null"`
	Ingredients string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the MealPlanModel.
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// ToEntity converts a MealPlanModel to a domain MealPlan entity.
func (m *MealPlanModel) ToEntity() *entity.MealPlan {
	return &entity.MealPlan{
		ID:          m.ID,
		Day:         m.Day,
		Meal:        m.Meal,
		Ingredients: m.Ingredients,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MealPlanFromEntity creates a MealPlanModel from a domain MealPlan entity.
func MealPlanFromEntity(plan *entity.MealPlan) *MealPlanModel {
	return &MealPlanModel{
		ID:          plan.ID,
		Day:         plan.Day,
		Meal:        plan.Meal,
		Ingredients: plan.Ingredients,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}
