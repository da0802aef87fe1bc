package grocery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
)

// UpdateGroceryItemInput represents the input for grocery item update.
// Nil fields are left unchanged.
type UpdateGroceryItemInput struct {
	ItemID     uuid.UUID
	Name       *string
	Brand      *string
	Quantity   *int
	Price      *decimal.Decimal
	Category   *string
	ExpiryDate *time.Time
}

// UpdateGroceryItemOutput represents the output of grocery item update.
type UpdateGroceryItemOutput struct {
	Item *entity.GroceryItem
}

// UpdateGroceryItemUseCase handles in-place edits of a grocery item.
type UpdateGroceryItemUseCase struct {
	itemRepo adapter.GroceryItemRepository
	clock    adapter.Clock
}

// NewUpdateGroceryItemUseCase creates a new UpdateGroceryItemUseCase instance.
func NewUpdateGroceryItemUseCase(itemRepo adapter.GroceryItemRepository, clock adapter.Clock) *UpdateGroceryItemUseCase {
	return &UpdateGroceryItemUseCase{
		itemRepo: itemRepo,
		clock:    clock,
	}
}

// Execute applies the provided fields after validating each one with the creation rules.
func (uc *UpdateGroceryItemUseCase) Execute(ctx context.Context, input UpdateGroceryItemInput) (*UpdateGroceryItemOutput, error) {
	item, err := uc.itemRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGroceryItemNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find grocery item: %w", err)
	}

	now := uc.clock.Now()

	if input.Name != nil {
		name := trim(input.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		item.Name = name
	}

	if input.Brand != nil {
		brand := trim(input.Brand)
		if err := validateBrand(brand); err != nil {
			return nil, err
		}
		item.Brand = brand
	}

	if input.Quantity != nil {
		if err := validateQuantity(*input.Quantity); err != nil {
			return nil, err
		}
		item.Quantity = *input.Quantity
	}

	if input.Price != nil {
		if err := validatePrice(*input.Price); err != nil {
			return nil, err
		}
		item.Price = *input.Price
	}

	if input.Category != nil {
		category := trim(input.Category)
		if err := validateCategory(category); err != nil {
			return nil, err
		}
		item.Category = category
	}

	// An unchanged expiry date is not re-checked, so items can be edited as they age.
	if input.ExpiryDate != nil && !input.ExpiryDate.Equal(item.ExpiryDate) {
		if err := validateExpiry(input.ExpiryDate, now); err != nil {
			return nil, err
		}
		item.ExpiryDate = input.ExpiryDate.UTC()
	}

	item.UpdatedAt = now.UTC()

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update grocery item: %w", err)
	}

	return &UpdateGroceryItemOutput{
		Item: item,
	}, nil
}
