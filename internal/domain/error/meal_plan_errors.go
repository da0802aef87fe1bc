package error

import "errors"

// Meal plan domain errors.
var (
	// ErrMealPlanNotFound is returned when no meal plan exists for a day.
	ErrMealPlanNotFound = errors.New("meal plan not found")

	// ErrNoValidMealPlans is returned when a batch has no entries left after filtering.
	ErrNoValidMealPlans = errors.New("no valid meal plans")
)

// MealPlanErrorCode defines error codes for meal plan errors.
// Format: MPL-XXYYYY where XX is category and YYYY is specific error.
type MealPlanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNoValidMealPlans    MealPlanErrorCode = "MPL-010001"
	ErrCodeInvalidMealPlanBody MealPlanErrorCode = "MPL-010002"

	// Lookup errors (02XXXX)
	ErrCodeMealPlanNotFound MealPlanErrorCode = "MPL-020001"
)

// MealPlanError represents a meal plan error with code and message.
type MealPlanError struct {
	Code    MealPlanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MealPlanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MealPlanError) Unwrap() error {
	return e.Err
}

// NewMealPlanError creates a new MealPlanError with the given code and message.
func NewMealPlanError(code MealPlanErrorCode, message string, err error) *MealPlanError {
	return &MealPlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
