package grocery

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
)

// GetGroceryItemInput represents the input for fetching a grocery item.
type GetGroceryItemInput struct {
	ItemID uuid.UUID
}

// GetGroceryItemOutput represents the output of fetching a grocery item.
type GetGroceryItemOutput struct {
	Item *entity.GroceryItem
}

// GetGroceryItemUseCase handles fetching a single grocery item.
type GetGroceryItemUseCase struct {
	itemRepo adapter.GroceryItemRepository
}

// NewGetGroceryItemUseCase creates a new GetGroceryItemUseCase instance.
func NewGetGroceryItemUseCase(itemRepo adapter.GroceryItemRepository) *GetGroceryItemUseCase {
	return &GetGroceryItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute fetches the grocery item.
func (uc *GetGroceryItemUseCase) Execute(ctx context.Context, input GetGroceryItemInput) (*GetGroceryItemOutput, error) {
	item, err := uc.itemRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGroceryItemNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find grocery item: %w", err)
	}

	return &GetGroceryItemOutput{
		Item: item,
	}, nil
}
