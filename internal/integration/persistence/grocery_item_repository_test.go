package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
)

func TestGroceryItemRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewGroceryItemRepository(newTestDB(t))
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

	item := entity.NewGroceryItem("Milk", "Alpro", 2, decimal.RequireFromString("2.49"), "Dairy", now.AddDate(0, 0, 7), now)
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("FindByID returns the stored fields", func(t *testing.T) {
		got, err := repo.FindByID(ctx, item.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Milk" || got.Brand != "Alpro" || got.Quantity != 2 || got.Category != "Dairy" {
			t.Errorf("unexpected item: %+v", got)
		}
		if !got.Price.Equal(decimal.RequireFromString("2.49")) {
			t.Errorf("expected price 2.49, got %s", got.Price)
		}
		if !got.ExpiryDate.Equal(item.ExpiryDate) {
			t.Errorf("expected expiry %s, got %s", item.ExpiryDate, got.ExpiryDate)
		}
	})

	t.Run("FindAll lists the item", func(t *testing.T) {
		items, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
	})

	t.Run("Update persists changes", func(t *testing.T) {
		item.Quantity = 5
		if err := repo.Update(ctx, item); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		got, err := repo.FindByID(ctx, item.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Quantity != 5 {
			t.Errorf("expected quantity 5, got %d", got.Quantity)
		}
	})

	t.Run("Delete removes the item", func(t *testing.T) {
		if err := repo.Delete(ctx, item.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := repo.FindByID(ctx, item.ID); !errors.Is(err, domainerror.ErrGroceryItemNotFound) {
			t.Errorf("expected ErrGroceryItemNotFound, got %v", err)
		}
	})

	t.Run("Delete of unknown id reports not found", func(t *testing.T) {
		if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrGroceryItemNotFound) {
			t.Errorf("expected ErrGroceryItemNotFound, got %v", err)
		}
	})
}
