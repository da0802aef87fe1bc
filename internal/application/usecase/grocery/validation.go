// Package grocery contains grocery inventory use cases.
package grocery

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/smart-grocery/backend/internal/domain/error"
)

const (
	minTextLength = 2
	codeMissing   = domainerror.ErrCodeMissingGroceryField
)

var minPrice = decimal.RequireFromString("0.01")

func validateName(name string) error {
	return validateText(name, "Product name", domainerror.ErrCodeGroceryNameTooShort)
}

func validateBrand(brand string) error {
	return validateText(brand, "Brand name", domainerror.ErrCodeGroceryBrandTooShort)
}

func validateText(value, label string, tooShort domainerror.GroceryErrorCode) error {
	if value == "" {
		return invalid(codeMissing, label+" is required")
	}
	if len([]rune(value)) < minTextLength {
		return invalid(tooShort, label+" must be at least 2 characters long")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return invalid(domainerror.ErrCodeInvalidQuantity, "Quantity must be at least 1")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.LessThan(minPrice) {
		return invalid(domainerror.ErrCodeInvalidPrice, "Price must be greater than 0")
	}
	return nil
}

func validateCategory(category string) error {
	if category == "" {
		return invalid(codeMissing, "Category is required")
	}
	return nil
}

// validateExpiry requires the expiry date to be strictly after now.
func validateExpiry(expiry *time.Time, now time.Time) error {
	if expiry == nil || expiry.IsZero() {
		return invalid(codeMissing, "Expiry date is required")
	}
	if !expiry.After(now) {
		return domainerror.NewGroceryError(
			domainerror.ErrCodeExpiryNotInFuture,
			"Expiry date must be a future date",
			domainerror.ErrExpiryNotInFuture,
		)
	}
	return nil
}

func invalid(code domainerror.GroceryErrorCode, message string) error {
	return domainerror.NewGroceryError(code, message, domainerror.ErrInvalidGroceryItem)
}

func trim(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func notFound() error {
	return domainerror.NewGroceryError(
		domainerror.ErrCodeGroceryItemNotFound,
		"Grocery item not found",
		domainerror.ErrGroceryItemNotFound,
	)
}
