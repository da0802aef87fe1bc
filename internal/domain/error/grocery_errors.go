// Package error defines domain-specific errors for the Smart Grocery application.
package error

import "errors"

// Grocery item domain errors.
var (
	// ErrGroceryItemNotFound is returned when a grocery item is not found in the system.
	ErrGroceryItemNotFound = errors.New("grocery item not found")

	// ErrInvalidGroceryItem is returned when a grocery item fails field validation.
	ErrInvalidGroceryItem = errors.New("invalid grocery item")

	// ErrExpiryNotInFuture is returned when the expiry date is not strictly in the future.
	ErrExpiryNotInFuture = errors.New("expiry date is not in the future")
)

// GroceryErrorCode defines error codes for grocery item errors.
// Format: GRC-XXYYYY where XX is category and YYYY is specific error.
type GroceryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingGroceryField  GroceryErrorCode = "GRC-010001"
	ErrCodeGroceryNameTooShort  GroceryErrorCode = "GRC-010002"
	ErrCodeGroceryBrandTooShort GroceryErrorCode = "GRC-010003"
	ErrCodeInvalidQuantity      GroceryErrorCode = "GRC-010004"
	ErrCodeInvalidPrice         GroceryErrorCode = "GRC-010005"
	ErrCodeExpiryNotInFuture    GroceryErrorCode = "GRC-010006"
	ErrCodeInvalidExpiryDate    GroceryErrorCode = "GRC-010007"
	ErrCodeInvalidGroceryID     GroceryErrorCode = "GRC-010008"

	// Lookup errors (02XXXX)
	ErrCodeGroceryItemNotFound GroceryErrorCode = "GRC-020001"
)

// GroceryError represents a grocery item error with code and message.
type GroceryError struct {
	Code    GroceryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GroceryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GroceryError) Unwrap() error {
	return e.Err
}

// NewGroceryError creates a new GroceryError with the given code and message.
func NewGroceryError(code GroceryErrorCode, message string, err error) *GroceryError {
	return &GroceryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
