// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

func TestProjectRepositoryDeleteGuardCountsAllReferences(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	projectRepo := NewProjectRepository(gdb)
	recurringRepo := NewRecurringRepository(gdb)

	project := createTestProject(t, gdb, "Website Redesign")

	// Two transactions plus one recurring template reference the project.
	createTestTransaction(t, gdb, 100, entity.TransactionTypeExpense, testDay(1), "stock photos", func(txn *entity.Transaction) {
		txn.ProjectID = &project.ID
	})
	createTestTransaction(t, gdb, 5000, entity.TransactionTypeIncome, testDay(2), "milestone payment", func(txn *entity.Transaction) {
		txn.ProjectID = &project.ID
	})

	template := entity.NewRecurringTransaction(
		"Hosting",
		decimal.NewFromInt(20),
		entity.CurrencyUSD,
		entity.TransactionTypeExpense,
		entity.FrequencyMonthly,
		nil, nil, &project.ID,
		"monthly hosting", "",
	)
	if _, err := recurringRepo.Create(ctx, template); err != nil {
		t.Fatalf("failed to create recurring template: %v", err)
	}

	t.Run("delete is blocked with the reference count", func(t *testing.T) {
		_, err := projectRepo.Delete(ctx, project.ID)
		var refErr *domainerror.ReferentialIntegrityError
		if !errors.As(err, &refErr) {
			t.Fatalf("expected ReferentialIntegrityError, got %v", err)
		}
		if refErr.Count != 3 {
			t.Errorf("Count = %d, want 3", refErr.Count)
		}
	})

	t.Run("CountReferences agrees", func(t *testing.T) {
		count, err := projectRepo.CountReferences(ctx, project.ID)
		if err != nil {
			t.Fatalf("CountReferences failed: %v", err)
		}
		if count != 3 {
			t.Errorf("CountReferences = %d, want 3", count)
		}
	})

	t.Run("project survives the blocked delete", func(t *testing.T) {
		if _, err := projectRepo.FindByID(ctx, project.ID); err != nil {
			t.Errorf("project disappeared after blocked delete: %v", err)
		}
	})
}

func TestProjectRepositoryUpdate(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	projectRepo := NewProjectRepository(gdb)

	project := createTestProject(t, gdb, "Retainer")

	budget := decimal.NewFromInt(25000)
	project.Status = entity.ProjectStatusPaused
	project.MonthlyBudget = &budget

	updated, err := projectRepo.Update(ctx, project)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != entity.ProjectStatusPaused {
		t.Errorf("Status = %s, want paused", updated.Status)
	}
	if updated.MonthlyBudget == nil || !updated.MonthlyBudget.Equal(budget) {
		t.Errorf("MonthlyBudget = %v, want 25000", updated.MonthlyBudget)
	}

	t.Run("budget can be cleared", func(t *testing.T) {
		updated.MonthlyBudget = nil
		cleared, err := projectRepo.Update(ctx, updated)
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if cleared.MonthlyBudget != nil {
			t.Errorf("MonthlyBudget = %v, want nil", cleared.MonthlyBudget)
		}
	})
}

func TestProjectRepositoryUpdateMissingID(t *testing.T) {
	gdb := newTestDB(t)

	ghost := entity.NewProject("Ghost", entity.ProjectTypeOther, entity.ProjectStatusActive, "", entity.DefaultProjectColor, nil, entity.BaseCurrency)
	if _, err := NewProjectRepository(gdb).Update(context.Background(), ghost); !errors.Is(err, domainerror.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}
