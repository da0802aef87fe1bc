package persistence

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/domain/valueobject"
	"github.com/smart-grocery/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// FindByPeriod retrieves the budget for a month and year.
func (r *budgetRepository) FindByPeriod(ctx context.Context, period valueobject.Period) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", period.Month, period.Year).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// UpsertTotal inserts the budget or, when its period already exists,
// overwrites only total_budget and updated_at.
func (r *budgetRepository) UpsertTotal(ctx context.Context, budget *entity.Budget) (*entity.Budget, error) {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_budget", "updated_at"}),
		}).
		Create(budgetModel)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.FindByPeriod(ctx, budget.Period())
}

// FindAll retrieves every budget, oldest period first.
func (r *budgetRepository) FindAll(ctx context.Context) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Order("year ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i := range budgetModels {
		budgets[i] = budgetModels[i].ToEntity()
	}

	// Month names do not sort lexically, so order within a year here.
	sort.SliceStable(budgets, func(i, j int) bool {
		if budgets[i].Year != budgets[j].Year {
			return budgets[i].Year < budgets[j].Year
		}
		return budgets[i].Period().MonthIndex() < budgets[j].Period().MonthIndex()
	})
	return budgets, nil
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Save(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByPeriod removes the budget for a month and year.
func (r *budgetRepository) DeleteByPeriod(ctx context.Context, period valueobject.Period) error {
	result := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", period.Month, period.Year).
		Delete(&model.BudgetModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}
