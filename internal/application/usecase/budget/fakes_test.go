package budget

import (
	"context"
	"sort"
	"time"

	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/domain/valueobject"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// memoryBudgetRepo mimics the unique (month, year) index of the real store.
type memoryBudgetRepo struct {
	budgets map[valueobject.Period]*entity.Budget
	err     error
}

func newMemoryBudgetRepo() *memoryBudgetRepo {
	return &memoryBudgetRepo{budgets: map[valueobject.Period]*entity.Budget{}}
}

func (r *memoryBudgetRepo) FindByPeriod(_ context.Context, period valueobject.Period) (*entity.Budget, error) {
	if r.err != nil {
		return nil, r.err
	}
	budget, ok := r.budgets[period]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	copied := *budget
	return &copied, nil
}

func (r *memoryBudgetRepo) UpsertTotal(ctx context.Context, budget *entity.Budget) (*entity.Budget, error) {
	if r.err != nil {
		return nil, r.err
	}
	if existing, ok := r.budgets[budget.Period()]; ok {
		existing.TotalBudget = budget.TotalBudget
		existing.UpdatedAt = budget.UpdatedAt
	} else {
		copied := *budget
		r.budgets[budget.Period()] = &copied
	}
	return r.FindByPeriod(ctx, budget.Period())
}

func (r *memoryBudgetRepo) FindAll(_ context.Context) ([]*entity.Budget, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Budget, 0, len(r.budgets))
	for _, budget := range r.budgets {
		copied := *budget
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Period().MonthIndex() < out[j].Period().MonthIndex()
	})
	return out, nil
}

func (r *memoryBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	if r.err != nil {
		return r.err
	}
	copied := *budget
	r.budgets[budget.Period()] = &copied
	return nil
}

func (r *memoryBudgetRepo) DeleteByPeriod(_ context.Context, period valueobject.Period) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.budgets[period]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	delete(r.budgets, period)
	return nil
}

func ptr[T any](v T) *T { return &v }
