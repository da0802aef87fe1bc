package grocery

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
)

// CreateGroceryItemInput represents the input for grocery item creation.
// Pointer fields distinguish a missing value from a zero value.
type CreateGroceryItemInput struct {
	Name       *string
	Brand      *string
	Quantity   *int
	Price      *decimal.Decimal
	Category   *string
	ExpiryDate *time.Time
}

// CreateGroceryItemOutput represents the output of grocery item creation.
type CreateGroceryItemOutput struct {
	Item *entity.GroceryItem
}

// CreateGroceryItemUseCase handles grocery item creation logic.
type CreateGroceryItemUseCase struct {
	itemRepo adapter.GroceryItemRepository
	clock    adapter.Clock
}

// NewCreateGroceryItemUseCase creates a new CreateGroceryItemUseCase instance.
func NewCreateGroceryItemUseCase(itemRepo adapter.GroceryItemRepository, clock adapter.Clock) *CreateGroceryItemUseCase {
	return &CreateGroceryItemUseCase{
		itemRepo: itemRepo,
		clock:    clock,
	}
}

// Execute validates and stores a new grocery item.
func (uc *CreateGroceryItemUseCase) Execute(ctx context.Context, input CreateGroceryItemInput) (*CreateGroceryItemOutput, error) {
	now := uc.clock.Now()

	name := trim(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	brand := trim(input.Brand)
	if err := validateBrand(brand); err != nil {
		return nil, err
	}

	if input.Quantity == nil {
		return nil, invalid(codeMissing, "Quantity is required")
	}
	if err := validateQuantity(*input.Quantity); err != nil {
		return nil, err
	}

	if input.Price == nil {
		return nil, invalid(codeMissing, "Price is required")
	}
	if err := validatePrice(*input.Price); err != nil {
		return nil, err
	}

	category := trim(input.Category)
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	if err := validateExpiry(input.ExpiryDate, now); err != nil {
		return nil, err
	}

	item := entity.NewGroceryItem(
		name,
		brand,
		*input.Quantity,
		*input.Price,
		category,
		*input.ExpiryDate,
		now,
	)

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create grocery item: %w", err)
	}

	return &CreateGroceryItemOutput{
		Item: item,
	}, nil
}
