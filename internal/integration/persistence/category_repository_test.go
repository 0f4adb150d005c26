// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

func TestCategoryRepositoryFindAll(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	categoryRepo := NewCategoryRepository(gdb)

	t.Run("includes the seeded system set", func(t *testing.T) {
		categories, err := categoryRepo.FindAll(ctx, adapter.CategoryFilter{})
		if err != nil {
			t.Fatalf("FindAll failed: %v", err)
		}
		if len(categories) != 13 {
			t.Errorf("len = %d, want 13 seeded categories", len(categories))
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		income := entity.CategoryTypeIncome
		categories, err := categoryRepo.FindAll(ctx, adapter.CategoryFilter{Type: &income})
		if err != nil {
			t.Fatalf("FindAll failed: %v", err)
		}
		if len(categories) != 4 {
			t.Errorf("len = %d, want 4 income categories", len(categories))
		}
		for _, category := range categories {
			if category.Type != entity.CategoryTypeIncome {
				t.Errorf("category %s has type %s", category.Name, category.Type)
			}
		}
	})

	t.Run("search narrows by name", func(t *testing.T) {
		categories, err := categoryRepo.FindAll(ctx, adapter.CategoryFilter{Search: "rent"})
		if err != nil {
			t.Fatalf("FindAll failed: %v", err)
		}
		if len(categories) != 1 || categories[0].Name != "Rent" {
			t.Errorf("expected only Rent, got %d results", len(categories))
		}
	})
}

func TestCategoryRepositoryDeleteGuard(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	categoryRepo := NewCategoryRepository(gdb)

	category := createTestCategory(t, gdb, "Equipment", entity.CategoryTypeExpense)
	createTestTransaction(t, gdb, 900, entity.TransactionTypeExpense, testDay(1), "new monitor", func(txn *entity.Transaction) {
		txn.CategoryID = &category.ID
	})

	t.Run("referenced category cannot be deleted", func(t *testing.T) {
		_, err := categoryRepo.Delete(ctx, category.ID)
		var refErr *domainerror.ReferentialIntegrityError
		if !errors.As(err, &refErr) {
			t.Fatalf("expected ReferentialIntegrityError, got %v", err)
		}
		if refErr.Count != 1 {
			t.Errorf("Count = %d, want 1", refErr.Count)
		}
	})

	t.Run("unreferenced category deletes cleanly", func(t *testing.T) {
		other := createTestCategory(t, gdb, "Marketing", entity.CategoryTypeExpense)

		deleted, err := categoryRepo.Delete(ctx, other.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if !deleted {
			t.Error("expected deleted = true")
		}
	})
}

func TestCategoryRepositoryUpdate(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	categoryRepo := NewCategoryRepository(gdb)

	category := createTestCategory(t, gdb, "Equipment", entity.CategoryTypeExpense)
	category.Name = "Hardware"
	category.Color = "#FF0000"

	updated, err := categoryRepo.Update(ctx, category)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Hardware" || updated.Color != "#FF0000" {
		t.Errorf("updated row = %s/%s, want Hardware/#FF0000", updated.Name, updated.Color)
	}
}
