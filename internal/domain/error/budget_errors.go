package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when no budget exists for a period.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetAmount is returned when a total budget or expense amount is not positive.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetPeriod is returned when the month or year is missing or malformed.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrPastBudgetPeriod is returned when writing a budget for an earlier month of the current year.
	ErrPastBudgetPeriod = errors.New("budget period is in the past")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTotalBudget  BudgetErrorCode = "BGT-010001"
	ErrCodeMissingPeriod       BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidMonth        BudgetErrorCode = "BGT-010003"
	ErrCodeInvalidYear         BudgetErrorCode = "BGT-010004"
	ErrCodePastBudgetPeriod    BudgetErrorCode = "BGT-010005"
	ErrCodeInvalidExpense      BudgetErrorCode = "BGT-010006"
	ErrCodeMissingBudgetFields BudgetErrorCode = "BGT-010007"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BGT-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
