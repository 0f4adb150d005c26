// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

func TestContactRepositoryFindByNameOrAlias(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	contactRepo := NewContactRepository(gdb)

	created := createTestContact(t, gdb, "Acme Corp", []string{"Acme", "ACME Inc"})
	createTestContact(t, gdb, "Globex", nil)

	t.Run("matches name case-insensitively", func(t *testing.T) {
		found, err := contactRepo.FindByNameOrAlias(ctx, "acme corp")
		if err != nil {
			t.Fatalf("FindByNameOrAlias failed: %v", err)
		}
		if found.ID != created.ID {
			t.Errorf("resolved %s, want %s", found.ID, created.ID)
		}
	})

	t.Run("matches alias case-insensitively", func(t *testing.T) {
		found, err := contactRepo.FindByNameOrAlias(ctx, "acme inc")
		if err != nil {
			t.Fatalf("FindByNameOrAlias failed: %v", err)
		}
		if found.ID != created.ID {
			t.Errorf("resolved %s, want %s", found.ID, created.ID)
		}
	})

	t.Run("unmatched name reports not found", func(t *testing.T) {
		if _, err := contactRepo.FindByNameOrAlias(ctx, "Initech"); !errors.Is(err, domainerror.ErrContactNotFound) {
			t.Errorf("expected ErrContactNotFound, got %v", err)
		}
	})
}

func TestContactRepositoryUpdateCannotTouchAggregates(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	contactRepo := NewContactRepository(gdb)

	contact := createTestContact(t, gdb, "Acme Corp", nil)
	createTestTransaction(t, gdb, 400, entity.TransactionTypeExpense, testDay(1), "supplies", func(txn *entity.Transaction) {
		txn.ContactID = &contact.ID
	})

	reloaded, err := contactRepo.FindByID(ctx, contact.ID)
	if err != nil {
		t.Fatalf("failed to reload contact: %v", err)
	}

	// Try to smuggle stale aggregates through Update.
	reloaded.Email = "billing@acme.example"
	reloaded.TotalSpent = reloaded.TotalSpent.Add(reloaded.TotalSpent)
	reloaded.TransactionCount = 99

	updated, err := contactRepo.Update(ctx, reloaded)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Email != "billing@acme.example" {
		t.Errorf("Email = %s, want billing@acme.example", updated.Email)
	}
	if updated.TransactionCount != 1 {
		t.Errorf("TransactionCount = %d, want 1 (aggregates are not writable)", updated.TransactionCount)
	}
}

func TestContactRepositoryDeleteGuard(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	contactRepo := NewContactRepository(gdb)

	contact := createTestContact(t, gdb, "Acme Corp", nil)
	createTestTransaction(t, gdb, 150, entity.TransactionTypeExpense, testDay(1), "supplies", func(txn *entity.Transaction) {
		txn.ContactID = &contact.ID
	})

	t.Run("referenced contact cannot be deleted", func(t *testing.T) {
		_, err := contactRepo.Delete(ctx, contact.ID)
		var refErr *domainerror.ReferentialIntegrityError
		if !errors.As(err, &refErr) {
			t.Fatalf("expected ReferentialIntegrityError, got %v", err)
		}
		if refErr.Count != 1 {
			t.Errorf("Count = %d, want 1", refErr.Count)
		}
	})

	t.Run("unreferenced contact deletes cleanly", func(t *testing.T) {
		other := createTestContact(t, gdb, "Globex", nil)

		deleted, err := contactRepo.Delete(ctx, other.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if !deleted {
			t.Error("expected deleted = true")
		}
	})

	t.Run("missing ID reports false without error", func(t *testing.T) {
		deleted, err := contactRepo.Delete(ctx, uuid.New())
		if err != nil {
			t.Fatalf("Delete returned error for missing ID: %v", err)
		}
		if deleted {
			t.Error("expected deleted = false for missing ID")
		}
	})
}

func TestContactRepositoryFindAll(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	contactRepo := NewContactRepository(gdb)

	createTestContact(t, gdb, "Globex", nil)
	createTestContact(t, gdb, "Acme Corp", nil)
	createTestContact(t, gdb, "Initech", nil)

	t.Run("orders by name", func(t *testing.T) {
		contacts, err := contactRepo.FindAll(ctx, adapter.ContactFilter{})
		if err != nil {
			t.Fatalf("FindAll failed: %v", err)
		}
		if len(contacts) != 3 {
			t.Fatalf("len = %d, want 3", len(contacts))
		}
		if contacts[0].Name != "Acme Corp" || contacts[2].Name != "Initech" {
			t.Errorf("unexpected order: %s, %s, %s", contacts[0].Name, contacts[1].Name, contacts[2].Name)
		}
	})

	t.Run("search narrows by name", func(t *testing.T) {
		contacts, err := contactRepo.FindAll(ctx, adapter.ContactFilter{Search: "glob"})
		if err != nil {
			t.Fatalf("FindAll failed: %v", err)
		}
		if len(contacts) != 1 || contacts[0].Name != "Globex" {
			t.Errorf("expected only Globex, got %d results", len(contacts))
		}
	})
}
