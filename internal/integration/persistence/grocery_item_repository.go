// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smart-grocery/backend/internal/application/adapter"
	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/integration/persistence/model"
)

// groceryItemRepository implements the adapter.GroceryItemRepository interface.
type groceryItemRepository struct {
	db *gorm.DB
}

// NewGroceryItemRepository creates a new grocery item repository instance.
func NewGroceryItemRepository(db *gorm.DB) adapter.GroceryItemRepository {
	return &groceryItemRepository{
		db: db,
	}
}

// Create creates a new grocery item in the database.
func (r *groceryItemRepository) Create(ctx context.Context, item *entity.GroceryItem) error {
	itemModel := model.GroceryItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves all grocery items.
func (r *groceryItemRepository) FindAll(ctx context.Context) ([]*entity.GroceryItem, error) {
	var itemModels []model.GroceryItemModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.GroceryItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}

// FindByID retrieves a grocery item by its ID.
func (r *groceryItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GroceryItem, error) {
	var itemModel model.GroceryItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGroceryItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// Update updates an existing grocery item in the database.
func (r *groceryItemRepository) Update(ctx context.Context, item *entity.GroceryItem) error {
	itemModel := model.GroceryItemFromEntity(item)
	result := r.db.WithContext(ctx).Save(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a grocery item from the database.
func (r *groceryItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GroceryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGroceryItemNotFound
	}
	return nil
}
