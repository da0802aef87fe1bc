package model

// AllModels lists every model managed by auto-migration.
func AllModels() []any {
	return []any{
		&GroceryItemModel{},
		&BudgetModel{},
		&MealPlanModel{},
	}
}
