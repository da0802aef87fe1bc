package adapter

import (
	"context"

	"github.com/smart-grocery/backend/internal/domain/entity"
	"github.com/smart-grocery/backend/internal/domain/valueobject"
)

// BudgetRepository defines the interface for budget persistence operations.
// Budgets are keyed by their (month, year) period; at most one exists per period.
type BudgetRepository interface {
	// FindByPeriod retrieves the budget for a period.
	// Returns ErrBudgetNotFound when none exists.
	FindByPeriod(ctx context.Context, period valueobject.Period) (*entity.Budget, error)

	// UpsertTotal finds the budget for budget's period or creates it.
	// On conflict only the total budget and update time are overwritten;
	// the stored id, amount spent and creation time are preserved.
	// Returns the budget as stored after the write.
	UpsertTotal(ctx context.Context, budget *entity.Budget) (*entity.Budget, error)

	// FindAll retrieves every budget, oldest period first.
	FindAll(ctx context.Context) ([]*entity.Budget, error)

	// Update saves all fields of an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// DeleteByPeriod removes the budget for a period.
	// Returns ErrBudgetNotFound when nothing was deleted.
	DeleteByPeriod(ctx context.Context, period valueobject.Period) error
}
