// Package valueobject contains domain value objects for the Smart Grocery system.
package valueobject

import (
	"strconv"
	"time"
)

// Period identifies a budgeting month by its full English month name and year.
type Period struct {
	Month string
	Year  int
}

// monthNames lists the accepted month spellings in calendar order.
var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// NewPeriod creates a Period from a month name and year.
func NewPeriod(month string, year int) Period {
	return Period{Month: month, Year: year}
}

// CurrentPeriod returns the period containing now.
func CurrentPeriod(now time.Time) Period {
	return Period{Month: now.Month().String(), Year: now.Year()}
}

// MonthIndex returns the zero-based calendar index of the month, or -1 when
// the name is not a full English month name.
func (p Period) MonthIndex() int {
	for i, name := range monthNames {
		if name == p.Month {
			return i
		}
	}
	return -1
}

// IsValidMonth reports whether the month is a recognised month name.
func (p Period) IsValidMonth() bool {
	return p.MonthIndex() >= 0
}

// IsPastMonthOfYear reports whether the period is an earlier month of the
// year containing now. Periods in earlier years are not considered past.
func (p Period) IsPastMonthOfYear(now time.Time) bool {
	return p.Year == now.Year() && p.MonthIndex() < int(now.Month())-1
}

// String renders the period as "Month Year".
func (p Period) String() string {
	return p.Month + " " + strconv.Itoa(p.Year)
}
