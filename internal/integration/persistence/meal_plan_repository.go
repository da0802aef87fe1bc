package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/integration/persistence/model"
)

// mealPlanRepository implements the adapter.MealPlanRepository interface.
type mealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository instance.
func NewMealPlanRepository(db *gorm.DB) adapter.MealPlanRepository {
	return &mealPlanRepository{
		db: db,
	}
}

// UpsertByDay inserts the plan or, when the day already has one,
// overwrites meal, ingredients and updated_at.
func (r *mealPlanRepository) UpsertByDay(ctx context.Context, plan *entity.MealPlan) (*entity.MealPlan, error) {
	planModel := model.MealPlanFromEntity(plan)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{"meal", "ingredients", "updated_at"}),
		}).
		Create(planModel)
	if result.Error != nil {
		return nil, result.Error
	}

	stored, err := r.FindByDay(ctx, plan.Day)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domainerror.ErrMealPlanNotFound
	}
	return stored, nil
}

// FindAll retrieves all meal plans.
func (r *mealPlanRepository) FindAll(ctx context.Context) ([]*entity.MealPlan, error) {
	var planModels []model.MealPlanModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.MealPlan, len(planModels))
	for i, pm := range planModels {
		plans[i] = pm.ToEntity()
	}
	return plans, nil
}

// FindByDay retrieves the meal plan for a day, or nil if none exists.
func (r *mealPlanRepository) FindByDay(ctx context.Context, day string) (*entity.MealPlan, error) {
	var planModel model.MealPlanModel
	result := r.db.WithContext(ctx).Where("day = ?", day).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// DeleteByDay removes the meal plan for a day.
func (r *mealPlanRepository) DeleteByDay(ctx context.Context, day string) error {
	result := r.db.WithContext(ctx).Where("day = ?", day).Delete(&model.MealPlanModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMealPlanNotFound
	}
	return nil
}
