package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/domain/valueobject"
)

// June 2025 is the reference "today" for these tests.
var june2025 = fixedClock{now: time.Date(2025, time.June, 14, 12, 0, 0, 0, time.UTC)}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func assertBudgetCode(t *testing.T, err error, expected domainerror.BudgetErrorCode) *domainerror.BudgetError {
	t.Helper()
	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected BudgetError %s, got %v", expected, err)
	}
	if budgetErr.Code != expected {
		t.Fatalf("expected code %s, got %s (%s)", expected, budgetErr.Code, budgetErr.Message)
	}
	return budgetErr
}

func TestSetBudgetUseCase_CreatesWithNothingSpent(t *testing.T) {
	repo := newMemoryBudgetRepo()
	uc := NewSetBudgetUseCase(repo, june2025)

	output, err := uc.Execute(context.Background(), SetBudgetInput{
		TotalBudget: dec("500"),
		Month:       ptr("June"),
		Year:        ptr(2025),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	budget := output.Budget
	if !budget.TotalBudget.Equal(decimal.NewFromInt(500)) || !budget.AmountSpent.IsZero() {
		t.Errorf("expected 500 total with 0 spent, got %s / %s", budget.TotalBudget, budget.AmountSpent)
	}
	if !budget.RemainingBudget().Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected remaining 500, got %s", budget.RemainingBudget())
	}
	if !budget.PercentageSpent().IsZero() {
		t.Errorf("expected 0 percent spent, got %s", budget.PercentageSpent())
	}
}

func TestSetBudgetUseCase_SecondSetOverwritesTotalAndKeepsSpending(t *testing.T) {
	repo := newMemoryBudgetRepo()
	setUC := NewSetBudgetUseCase(repo, june2025)
	spendUC := NewAddExpenseUseCase(repo, june2025)
	ctx := context.Background()

	if _, err := setUC.Execute(ctx, SetBudgetInput{TotalBudget: dec("400"), Month: ptr("July"), Year: ptr(2025)}); err != nil {
		t.Fatalf("first set failed: %v", err)
	}
	if _, err := spendUC.Execute(ctx, AddExpenseInput{Amount: dec("75"), Month: ptr("July"), Year: ptr(2025)}); err != nil {
		t.Fatalf("expense failed: %v", err)
	}

	output, err := setUC.Execute(ctx, SetBudgetInput{TotalBudget: dec("600"), Month: ptr("July"), Year: ptr(2025)})
	if err != nil {
		t.Fatalf("second set failed: %v", err)
	}

	if len(repo.budgets) != 1 {
		t.Fatalf("expected one record for the period, got %d", len(repo.budgets))
	}
	if !output.Budget.TotalBudget.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected total 600, got %s", output.Budget.TotalBudget)
	}
	if !output.Budget.AmountSpent.Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected amount spent preserved at 75, got %s", output.Budget.AmountSpent)
	}
}

func TestSetBudgetUseCase_Validation(t *testing.T) {
	tests := []struct {
		name         string
		input        SetBudgetInput
		expectedCode domainerror.BudgetErrorCode
		expectedMsg  string
	}{
		{
			name:         "missing total",
			input:        SetBudgetInput{Month: ptr("June"), Year: ptr(2025)},
			expectedCode: domainerror.ErrCodeInvalidTotalBudget,
			expectedMsg:  "Total budget must be a positive number",
		},
		{
			name:         "zero total",
			input:        SetBudgetInput{TotalBudget: dec("0"), Month: ptr("June"), Year: ptr(2025)},
			expectedCode: domainerror.ErrCodeInvalidTotalBudget,
			expectedMsg:  "Total budget must be a positive number",
		},
		{
			name:         "negative total",
			input:        SetBudgetInput{TotalBudget: dec("-10"), Month: ptr("June"), Year: ptr(2025)},
			expectedCode: domainerror.ErrCodeInvalidTotalBudget,
			expectedMsg:  "Total budget must be a positive number",
		},
		{
			name:         "missing month",
			input:        SetBudgetInput{TotalBudget: dec("100"), Year: ptr(2025)},
			expectedCode: domainerror.ErrCodeMissingPeriod,
			expectedMsg:  "Month and year are required",
		},
		{
			name:         "missing year",
			input:        SetBudgetInput{TotalBudget: dec("100"), Month: ptr("June")},
			expectedCode: domainerror.ErrCodeMissingPeriod,
			expectedMsg:  "Month and year are required",
		},
		{
			name:         "abbreviated month",
			input:        SetBudgetInput{TotalBudget: dec("100"), Month: ptr("Jun"), Year: ptr(2025)},
			expectedCode: domainerror.ErrCodeInvalidMonth,
			expectedMsg:  "Invalid month name",
		},
		{
			name:         "earlier month of the current year",
			input:        SetBudgetInput{TotalBudget: dec("100"), Month: ptr("January"), Year: ptr(2025)},
			expectedCode: domainerror.ErrCodePastBudgetPeriod,
			expectedMsg:  "Cannot set budget for a past month in the current year",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryBudgetRepo()
			uc := NewSetBudgetUseCase(repo, june2025)

			_, err := uc.Execute(context.Background(), tt.input)

			budgetErr := assertBudgetCode(t, err, tt.expectedCode)
			if budgetErr.Message != tt.expectedMsg {
				t.Errorf("expected message %q, got %q", tt.expectedMsg, budgetErr.Message)
			}
			if len(repo.budgets) != 0 {
				t.Errorf("expected nothing stored, got %d", len(repo.budgets))
			}
		})
	}
}

func TestSetBudgetUseCase_AllowedPeriods(t *testing.T) {
	tests := []struct {
		name  string
		month string
		year  int
	}{
		{name: "current month", month: "June", year: 2025},
		{name: "later month", month: "December", year: 2025},
		{name: "next year", month: "January", year: 2026},
		{name: "earlier year", month: "March", year: 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewSetBudgetUseCase(newMemoryBudgetRepo(), june2025)

			output, err := uc.Execute(context.Background(), SetBudgetInput{
				TotalBudget: dec("250"),
				Month:       ptr(tt.month),
				Year:        ptr(tt.year),
			})
			if err != nil {
				t.Fatalf("expected %s %d to be accepted, got %v", tt.month, tt.year, err)
			}
			if output.Budget.Month != tt.month || output.Budget.Year != tt.year {
				t.Errorf("unexpected period %s %d", output.Budget.Month, output.Budget.Year)
			}
		})
	}
}

func TestSetBudgetUseCase_RepositoryFailure(t *testing.T) {
	repo := newMemoryBudgetRepo()
	repo.err = errors.New("database is locked")
	uc := NewSetBudgetUseCase(repo, june2025)

	_, err := uc.Execute(context.Background(), SetBudgetInput{TotalBudget: dec("10"), Month: ptr("June"), Year: ptr(2025)})

	var budgetErr *domainerror.BudgetError
	if err == nil || errors.As(err, &budgetErr) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}

func TestAddExpenseUseCase_AccumulatesSpending(t *testing.T) {
	repo := newMemoryBudgetRepo()
	ctx := context.Background()
	if _, err := NewSetBudgetUseCase(repo, june2025).Execute(ctx, SetBudgetInput{
		TotalBudget: dec("200"),
		Month:       ptr("June"),
		Year:        ptr(2025),
	}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	uc := NewAddExpenseUseCase(repo, june2025)
	if _, err := uc.Execute(ctx, AddExpenseInput{Amount: dec("50")}); err != nil {
		t.Fatalf("first expense failed: %v", err)
	}
	output, err := uc.Execute(ctx, AddExpenseInput{Amount: dec("30")})
	if err != nil {
		t.Fatalf("second expense failed: %v", err)
	}

	budget := output.Budget
	if !budget.AmountSpent.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected 80 spent, got %s", budget.AmountSpent)
	}
	if !budget.RemainingBudget().Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected 120 remaining, got %s", budget.RemainingBudget())
	}
	if !budget.PercentageSpent().Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected 40 percent, got %s", budget.PercentageSpent())
	}
}

func TestAddExpenseUseCase_Errors(t *testing.T) {
	repo := newMemoryBudgetRepo()
	// A budget left over from an earlier month of the year.
	march := valueobject.NewPeriod("March", 2025)
	repo.budgets[march] = entity.NewBudget(decimal.NewFromInt(100), march, june2025.now.AddDate(0, -4, 0))

	uc := NewAddExpenseUseCase(repo, june2025)

	tests := []struct {
		name         string
		input        AddExpenseInput
		expectedCode domainerror.BudgetErrorCode
	}{
		{name: "missing amount", input: AddExpenseInput{}, expectedCode: domainerror.ErrCodeInvalidExpense},
		{name: "zero amount", input: AddExpenseInput{Amount: dec("0")}, expectedCode: domainerror.ErrCodeInvalidExpense},
		{name: "negative amount", input: AddExpenseInput{Amount: dec("-5")}, expectedCode: domainerror.ErrCodeInvalidExpense},
		{name: "no budget for current month", input: AddExpenseInput{Amount: dec("5")}, expectedCode: domainerror.ErrCodeBudgetNotFound},
		{
			name:         "budget of a past month",
			input:        AddExpenseInput{Amount: dec("5"), Month: ptr("March"), Year: ptr(2025)},
			expectedCode: domainerror.ErrCodePastBudgetPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			assertBudgetCode(t, err, tt.expectedCode)
		})
	}

	if !repo.budgets[march].AmountSpent.IsZero() {
		t.Error("expected the past-month budget to be left unchanged")
	}
}

func TestGetBudgetUseCases(t *testing.T) {
	repo := newMemoryBudgetRepo()
	ctx := context.Background()

	_, err := NewGetCurrentBudgetUseCase(repo, june2025).Execute(ctx)
	budgetErr := assertBudgetCode(t, err, domainerror.ErrCodeBudgetNotFound)
	if budgetErr.Message != "No budget found for current month" {
		t.Errorf("unexpected message %q", budgetErr.Message)
	}

	_, err = NewGetBudgetUseCase(repo).Execute(ctx, GetBudgetInput{Month: "August", Year: 2025})
	budgetErr = assertBudgetCode(t, err, domainerror.ErrCodeBudgetNotFound)
	if budgetErr.Message != "No budget found for August 2025" {
		t.Errorf("unexpected message %q", budgetErr.Message)
	}

	if _, err := NewSetBudgetUseCase(repo, june2025).Execute(ctx, SetBudgetInput{
		TotalBudget: dec("320"),
		Month:       ptr("June"),
		Year:        ptr(2025),
	}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	current, err := NewGetCurrentBudgetUseCase(repo, june2025).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.Budget.Month != "June" || current.Budget.Year != 2025 {
		t.Errorf("expected June 2025, got %s %d", current.Budget.Month, current.Budget.Year)
	}
}

func TestDeleteBudgetUseCase(t *testing.T) {
	repo := newMemoryBudgetRepo()
	ctx := context.Background()
	if _, err := NewSetBudgetUseCase(repo, june2025).Execute(ctx, SetBudgetInput{
		TotalBudget: dec("90"),
		Month:       ptr("September"),
		Year:        ptr(2025),
	}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	uc := NewDeleteBudgetUseCase(repo)
	if err := uc.Execute(ctx, DeleteBudgetInput{Month: "September", Year: 2025}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := uc.Execute(ctx, DeleteBudgetInput{Month: "September", Year: 2025})
	budgetErr := assertBudgetCode(t, err, domainerror.ErrCodeBudgetNotFound)
	if budgetErr.Message != "No budget found for September 2025" {
		t.Errorf("unexpected message %q", budgetErr.Message)
	}
}

func TestListBudgetsUseCase(t *testing.T) {
	repo := newMemoryBudgetRepo()
	ctx := context.Background()
	setUC := NewSetBudgetUseCase(repo, june2025)

	for _, in := range []SetBudgetInput{
		{TotalBudget: dec("100"), Month: ptr("August"), Year: ptr(2025)},
		{TotalBudget: dec("200"), Month: ptr("July"), Year: ptr(2025)},
		{TotalBudget: dec("300"), Month: ptr("May"), Year: ptr(2024)},
	} {
		if _, err := setUC.Execute(ctx, in); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}

	output, err := NewListBudgetsUseCase(repo).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"May 2024", "July 2025", "August 2025"}
	if len(output.Budgets) != len(want) {
		t.Fatalf("expected %d budgets, got %d", len(want), len(output.Budgets))
	}
	for i, period := range want {
		if got := output.Budgets[i].Period().String(); got != period {
			t.Errorf("position %d: expected %s, got %s", i, period, got)
		}
	}
}
