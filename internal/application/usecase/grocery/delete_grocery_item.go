package grocery

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/smart-grocery/backend/internal/application/adapter"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
)

// DeleteGroceryItemInput represents the input for grocery item deletion.
type DeleteGroceryItemInput struct {
	ItemID uuid.UUID
}

// DeleteGroceryItemUseCase handles grocery item deletion logic.
type DeleteGroceryItemUseCase struct {
	itemRepo adapter.GroceryItemRepository
}

// NewDeleteGroceryItemUseCase creates a new DeleteGroceryItemUseCase instance.
func NewDeleteGroceryItemUseCase(itemRepo adapter.GroceryItemRepository) *DeleteGroceryItemUseCase {
	return &DeleteGroceryItemUseCase{
		itemRepo: itemRepo,
	}
}

// Execute removes the grocery item.
func (uc *DeleteGroceryItemUseCase) Execute(ctx context.Context, input DeleteGroceryItemInput) error {
	if err := uc.itemRepo.Delete(ctx, input.ItemID); err != nil {
		if errors.Is(err, domainerror.ErrGroceryItemNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to delete grocery item: %w", err)
	}
	return nil
}
