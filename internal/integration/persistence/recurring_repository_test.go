// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

func createTestTemplate(t *testing.T, gdb *gorm.DB, name string, nextDue time.Time, mutate func(*entity.RecurringTransaction)) *entity.RecurringTransaction {
	t.Helper()

	template := entity.NewRecurringTransaction(
		name,
		decimal.NewFromInt(1000),
		entity.CurrencyINR,
		entity.TransactionTypeExpense,
		entity.FrequencyMonthly,
		nil, nil, nil,
		"", "",
	)
	template.NextDueDate = &nextDue
	if mutate != nil {
		mutate(template)
	}

	created, err := NewRecurringRepository(gdb).Create(context.Background(), template)
	if err != nil {
		t.Fatalf("failed to create template %s: %v", name, err)
	}
	return created
}

func TestRecurringRepositoryFindDue(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	recurringRepo := NewRecurringRepository(gdb)

	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	createTestTemplate(t, gdb, "overdue rent", now.AddDate(0, 0, -10), nil)
	createTestTemplate(t, gdb, "due today", now, nil)
	createTestTemplate(t, gdb, "due next week", now.AddDate(0, 0, 7), nil)
	createTestTemplate(t, gdb, "inactive but overdue", now.AddDate(0, 0, -3), func(template *entity.RecurringTransaction) {
		template.IsActive = false
	})

	due, err := recurringRepo.FindDue(ctx, now)
	if err != nil {
		t.Fatalf("FindDue failed: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("len = %d, want 2", len(due))
	}
	if due[0].Name != "overdue rent" || due[1].Name != "due today" {
		t.Errorf("unexpected order: %s, %s", due[0].Name, due[1].Name)
	}
}

func TestRecurringRepositoryFindUpcomingIncludesOverdue(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	recurringRepo := NewRecurringRepository(gdb)

	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	createTestTemplate(t, gdb, "overdue", now.AddDate(0, 0, -2), nil)
	createTestTemplate(t, gdb, "within horizon", now.AddDate(0, 0, 5), nil)
	createTestTemplate(t, gdb, "beyond horizon", now.AddDate(0, 0, 12), nil)

	upcoming, err := recurringRepo.FindUpcoming(ctx, now, 7)
	if err != nil {
		t.Fatalf("FindUpcoming failed: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("len = %d, want 2", len(upcoming))
	}
	if upcoming[0].Name != "overdue" {
		t.Errorf("expected overdue template first, got %s", upcoming[0].Name)
	}
}

func TestRecurringRepositoryMaterialize(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	recurringRepo := NewRecurringRepository(gdb)
	transactionRepo := NewTransactionRepository(gdb)
	contactRepo := NewContactRepository(gdb)

	contact := createTestContact(t, gdb, "Landlord", nil)
	effectiveDate := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	nextDue := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	template := createTestTemplate(t, gdb, "Office Rent", effectiveDate, func(tpl *entity.RecurringTransaction) {
		tpl.ContactID = &contact.ID
	})

	occurrence := entity.NewTransaction(
		template.Amount,
		template.Currency,
		template.Type,
		effectiveDate,
		template.ContactID,
		nil, nil,
		"Office Rent", "",
	)
	occurrence.IsRecurring = true
	occurrence.RecurringGroupID = &template.ID

	template.LastCreatedAt = &effectiveDate
	template.NextDueDate = &nextDue

	persisted, err := recurringRepo.Materialize(ctx, template, occurrence)
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}

	t.Run("occurrence is stamped as recurring-born", func(t *testing.T) {
		if !persisted.IsRecurring {
			t.Error("expected IsRecurring = true")
		}
		if persisted.RecurringGroupID == nil || *persisted.RecurringGroupID != template.ID {
			t.Errorf("RecurringGroupID = %v, want %s", persisted.RecurringGroupID, template.ID)
		}
		if _, err := transactionRepo.FindByID(ctx, persisted.ID); err != nil {
			t.Errorf("occurrence not readable after commit: %v", err)
		}
	})

	t.Run("template schedule state is persisted", func(t *testing.T) {
		reloaded, err := recurringRepo.FindByID(ctx, template.ID)
		if err != nil {
			t.Fatalf("failed to reload template: %v", err)
		}
		if reloaded.LastCreatedAt == nil || !reloaded.LastCreatedAt.Equal(effectiveDate) {
			t.Errorf("LastCreatedAt = %v, want %s", reloaded.LastCreatedAt, effectiveDate)
		}
		if reloaded.NextDueDate == nil || !reloaded.NextDueDate.Equal(nextDue) {
			t.Errorf("NextDueDate = %v, want %s", reloaded.NextDueDate, nextDue)
		}
	})

	t.Run("contact aggregates include the occurrence", func(t *testing.T) {
		reloaded, err := contactRepo.FindByID(ctx, contact.ID)
		if err != nil {
			t.Fatalf("failed to reload contact: %v", err)
		}
		if !reloaded.TotalSpent.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("TotalSpent = %s, want 1000", reloaded.TotalSpent)
		}
		if reloaded.TransactionCount != 1 {
			t.Errorf("TransactionCount = %d, want 1", reloaded.TransactionCount)
		}
	})
}

func TestRecurringRepositoryDelete(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	recurringRepo := NewRecurringRepository(gdb)

	template := createTestTemplate(t, gdb, "Hosting", time.Now().UTC(), nil)

	deleted, err := recurringRepo.Delete(ctx, template.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("expected deleted = true")
	}

	deleted, err = recurringRepo.Delete(ctx, uuid.New())
	if err != nil {
		t.Fatalf("Delete returned error for missing ID: %v", err)
	}
	if deleted {
		t.Error("expected deleted = false for missing ID")
	}
}

func TestRecurringRepositoryFindByIDMissing(t *testing.T) {
	gdb := newTestDB(t)

	if _, err := NewRecurringRepository(gdb).FindByID(context.Background(), uuid.New()); !errors.Is(err, domainerror.ErrRecurringNotFound) {
		t.Errorf("expected ErrRecurringNotFound, got %v", err)
	}
}
