package dto

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-grocery/backend/internal/application/usecase/grocery"
	"github.com/smart-grocery/backend/internal/domain/entity"
)

// expiryDateLayouts are the accepted formats for expiryDate, in order of preference.
var expiryDateLayouts = []string{time.RFC3339Nano, "2006-01-02"}

// ErrInvalidExpiryDate is returned when expiryDate matches none of the accepted layouts.
var ErrInvalidExpiryDate = errors.New("invalid expiry date")

// GroceryItemRequest represents the request body for grocery item creation and update.
// Every field is optional at the binding level; the use cases decide what is required.
type GroceryItemRequest struct {
	Name       *string  `json:"name"`
	Brand      *string  `json:"brand"`
	Quantity   *int     `json:"quantity"`
	Price      *float64 `json:"price"`
	Category   *string  `json:"category"`
	ExpiryDate *string  `json:"expiryDate"`
}

// GroceryItemResponse represents a single grocery item in API responses.
type GroceryItemResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Brand      string    `json:"brand"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
	Category   string    `json:"category"`
	ExpiryDate time.Time `json:"expiryDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UpdateGroceryItemResponse represents the response for a grocery item update.
type UpdateGroceryItemResponse struct {
	Message string              `json:"message"`
	Item    GroceryItemResponse `json:"item"`
}

// ToCreateInput converts the request into the creation use case input.
func (r GroceryItemRequest) ToCreateInput() (grocery.CreateGroceryItemInput, error) {
	expiry, err := parseExpiryDate(r.ExpiryDate)
	if err != nil {
		return grocery.CreateGroceryItemInput{}, err
	}

	return grocery.CreateGroceryItemInput{
		Name:       r.Name,
		Brand:      r.Brand,
		Quantity:   r.Quantity,
		Price:      toDecimal(r.Price),
		Category:   r.Category,
		ExpiryDate: expiry,
	}, nil
}

// ToUpdateInput converts the request into the update use case input.
func (r GroceryItemRequest) ToUpdateInput() (grocery.UpdateGroceryItemInput, error) {
	expiry, err := parseExpiryDate(r.ExpiryDate)
	if err != nil {
		return grocery.UpdateGroceryItemInput{}, err
	}

	return grocery.UpdateGroceryItemInput{
		Name:       r.Name,
		Brand:      r.Brand,
		Quantity:   r.Quantity,
		Price:      toDecimal(r.Price),
		Category:   r.Category,
		ExpiryDate: expiry,
	}, nil
}

// ToGroceryItemResponse converts a domain GroceryItem entity to a GroceryItemResponse DTO.
func ToGroceryItemResponse(item *entity.GroceryItem) GroceryItemResponse {
	return GroceryItemResponse{
		ID:         item.ID.String(),
		Name:       item.Name,
		Brand:      item.Brand,
		Quantity:   item.Quantity,
		Price:      item.Price.InexactFloat64(),
		Category:   item.Category,
		ExpiryDate: item.ExpiryDate,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

// ToGroceryItemListResponse converts a slice of GroceryItem entities to response DTOs.
func ToGroceryItemListResponse(items []*entity.GroceryItem) []GroceryItemResponse {
	responses := make([]GroceryItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToGroceryItemResponse(item)
	}
	return responses
}

// parseExpiryDate accepts RFC 3339 timestamps and plain dates from <input type="date">.
// Empty and absent values both yield nil.
func parseExpiryDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	for _, layout := range expiryDateLayouts {
		if t, err := time.Parse(layout, *value); err == nil {
			return &t, nil
		}
	}
	return nil, ErrInvalidExpiryDate
}

func toDecimal(value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d := decimal.NewFromFloat(*value)
	return &d
}
