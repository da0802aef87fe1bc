// Package budget contains monthly budget use cases.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/domain/valueobject"
)

// validatePeriodForWrite checks the month spelling and the past-month guard.
// Earlier years pass the guard; only earlier months of the current year are rejected.
func validatePeriodForWrite(period valueobject.Period, now time.Time) error {
	if !period.IsValidMonth() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"Invalid month name",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	if period.IsPastMonthOfYear(now) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodePastBudgetPeriod,
			"Cannot set budget for a past month in the current year",
			domainerror.ErrPastBudgetPeriod,
		)
	}
	return nil
}

func isPositive(amount *decimal.Decimal) bool {
	return amount != nil && amount.IsPositive()
}
