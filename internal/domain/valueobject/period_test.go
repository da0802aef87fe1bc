package valueobject

import (
	"testing"
	"time"
)

func TestPeriod_MonthIndex(t *testing.T) {
	tests := []struct {
		month    string
		expected int
	}{
		{month: "January", expected: 0},
		{month: "June", expected: 5},
		{month: "December", expected: 11},
		{month: "june", expected: -1},
		{month: "Jun", expected: -1},
		{month: "", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			p := NewPeriod(tt.month, 2025)
			if got := p.MonthIndex(); got != tt.expected {
				t.Errorf("expected index %d, got %d", tt.expected, got)
			}
			if p.IsValidMonth() != (tt.expected >= 0) {
				t.Errorf("IsValidMonth disagrees with index %d", tt.expected)
			}
		})
	}
}

func TestPeriod_IsPastMonthOfYear(t *testing.T) {
	now := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   Period
		expected bool
	}{
		{name: "earlier month this year", period: NewPeriod("May", 2025), expected: true},
		{name: "january this year", period: NewPeriod("January", 2025), expected: true},
		{name: "current month", period: NewPeriod("June", 2025), expected: false},
		{name: "later month this year", period: NewPeriod("December", 2025), expected: false},
		{name: "earlier year", period: NewPeriod("March", 2024), expected: false},
		{name: "next year", period: NewPeriod("January", 2026), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.period.IsPastMonthOfYear(now); got != tt.expected {
				t.Errorf("expected %v for %s, got %v", tt.expected, tt.period, got)
			}
		})
	}
}

func TestCurrentPeriod(t *testing.T) {
	p := CurrentPeriod(time.Date(2025, time.February, 28, 23, 0, 0, 0, time.UTC))

	if p.Month != "February" || p.Year != 2025 {
		t.Errorf("unexpected period %s", p)
	}
	if p.String() != "February 2025" {
		t.Errorf("unexpected string %q", p.String())
	}
}
