package persistence

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/smart-grocery/backend/internal/domain/entity"
	domainerror "github.com/smart-grocery/backend/internal/domain/error"
	"github.com/smart-grocery/backend/internal/integration/persistence/model"
)

func TestMealPlanRepository_UpsertByDay(t *testing.T) {
	ctx := context.Background()
	repo := NewMealPlanRepository(newTestDB(t))
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

	first, err := repo.UpsertByDay(ctx, entity.NewMealPlan("Monday", "Pasta", "pasta, sauce", now))
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second, err := repo.UpsertByDay(ctx, entity.NewMealPlan("Monday", "Risotto", "rice, stock", now.Add(time.Minute)))
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected id %s to be preserved, got %s", first.ID, second.ID)
	}
	if second.Meal != "Risotto" || second.Ingredients != "rice, stock" {
		t.Errorf("expected overwritten meal, got %+v", second)
	}

	plans, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(plans) != 1 {
		t.Errorf("expected 1 plan, got %d", len(plans))
	}
}

func TestMealPlanRepository_FindAndDeleteByDay(t *testing.T) {
	ctx := context.Background()
	repo := NewMealPlanRepository(newTestDB(t))
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

	missing, err := repo.FindByDay(ctx, "Sunday")
	if err != nil {
		t.Fatalf("expected no error for absent day, got %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil plan for absent day, got %+v", missing)
	}

	if err := repo.DeleteByDay(ctx, "Sunday"); !errors.Is(err, domainerror.ErrMealPlanNotFound) {
		t.Errorf("expected ErrMealPlanNotFound, got %v", err)
	}

	if _, err := repo.UpsertByDay(ctx, entity.NewMealPlan("Sunday", "Roast", "chicken, potatoes", now)); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := repo.DeleteByDay(ctx, "Sunday"); err != nil {
		t.Errorf("expected delete to succeed, got %v", err)
	}
}

func TestMealPlanRepository_StoresLongMealNames(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewMealPlanRepository(db)
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

	columns, err := db.Migrator().ColumnTypes(&model.MealPlanModel{})
	if err != nil {
		t.Fatalf("failed to read columns: %v", err)
	}
	for _, column := range columns {
		if column.Name() == "meal" && !strings.EqualFold(column.DatabaseTypeName(), "text") {
			t.Errorf("expected meal column of type text, got %s", column.DatabaseTypeName())
		}
	}

	meal := strings.Repeat("Slow-cooked lentil stew ", 20)
	if _, err := repo.UpsertByDay(ctx, entity.NewMealPlan("Thursday", meal, "lentils, carrots", now)); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := repo.FindByDay(ctx, "Thursday")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got == nil || got.Meal != meal {
		t.Errorf("expected the full meal name to be stored, got %+v", got)
	}
}
