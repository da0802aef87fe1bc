package grocery

import (
	"context"
	"fmt"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
)

// ListGroceryItemsOutput represents the output of listing grocery items.
type ListGroceryItemsOutput struct {
	Items []*entity.GroceryItem
}

// ListGroceryItemsUseCase handles listing the inventory.
type ListGroceryItemsUseCase struct {
	itemRepo adapter.GroceryItemRepository
}

// NewListGroceryItemsUseCase creates a new ListGroceryItemsUseCase instance.
func NewListGroceryItemsUseCase(itemRepo adapter.GroceryItemRepository) *ListGroceryItemsUseCase {
	return &ListGroceryItemsUseCase{
		itemRepo: itemRepo,
	}
}

// Execute returns every grocery item.
func (uc *ListGroceryItemsUseCase) Execute(ctx context.Context) (*ListGroceryItemsOutput, error) {
	items, err := uc.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery items: %w", err)
	}

	return &ListGroceryItemsOutput{
		Items: items,
	}, nil
}
