package grocery

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type memoryItemRepo struct {
	items   map[uuid.UUID]*entity.GroceryItem
	order   []uuid.UUID
	failAll error
}

func newMemoryItemRepo() *memoryItemRepo {
	return &memoryItemRepo{items: map[uuid.UUID]*entity.GroceryItem{}}
}

func (r *memoryItemRepo) Create(_ context.Context, item *entity.GroceryItem) error {
	if r.failAll != nil {
		return r.failAll
	}
	copied := *item
	r.items[item.ID] = &copied
	r.order = append(r.order, item.ID)
	return nil
}

func (r *memoryItemRepo) FindAll(_ context.Context) ([]*entity.GroceryItem, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	out := make([]*entity.GroceryItem, 0, len(r.order))
	for _, id := range r.order {
		if item, ok := r.items[id]; ok {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memoryItemRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.GroceryItem, error) {
	if r.failAll != nil {
		return nil, r.failAll
	}
	item, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrGroceryItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *memoryItemRepo) Update(_ context.Context, item *entity.GroceryItem) error {
	if r.failAll != nil {
		return r.failAll
	}
	if _, ok := r.items[item.ID]; !ok {
		return errors.New("update of unknown item")
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *memoryItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.failAll != nil {
		return r.failAll
	}
	if _, ok := r.items[id]; !ok {
		return domainerror.ErrGroceryItemNotFound
	}
	delete(r.items, id)
	return nil
}

func ptr[T any](v T) *T { return &v }
