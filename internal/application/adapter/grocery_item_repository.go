package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-grocery/backend/internal/domain/entity"
)

// GroceryItemRepository defines the interface for grocery item persistence operations.
type GroceryItemRepository interface {
	// Create stores a new grocery item.
	Create(ctx context.Context, item *entity.GroceryItem) error

	// FindAll retrieves every grocery item in storage order.
	FindAll(ctx context.Context) ([]*entity.GroceryItem, error)

	// FindByID retrieves a grocery item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GroceryItem, error)

	// Update saves all fields of an existing grocery item.
	Update(ctx context.Context, item *entity.GroceryItem) error

	// Delete removes a grocery item. Returns ErrGroceryItemNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
