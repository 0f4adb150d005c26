// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

func TestTransactionRepositoryCreateRecalculatesContactAggregates(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	contactRepo := NewContactRepository(gdb)

	acme := createTestContact(t, gdb, "Acme Corp", nil)

	createTestTransaction(t, gdb, 500, entity.TransactionTypeExpense, testDay(1), "supplies", func(txn *entity.Transaction) {
		txn.ContactID = &acme.ID
	})

	reloaded, err := contactRepo.FindByID(ctx, acme.ID)
	if err != nil {
		t.Fatalf("failed to reload contact: %v", err)
	}
	if !reloaded.TotalSpent.Equal(decimal.NewFromInt(500)) {
		t.Errorf("TotalSpent = %s, want 500", reloaded.TotalSpent)
	}
	if !reloaded.TotalReceived.IsZero() {
		t.Errorf("TotalReceived = %s, want 0", reloaded.TotalReceived)
	}
	if reloaded.TransactionCount != 1 {
		t.Errorf("TransactionCount = %d, want 1", reloaded.TransactionCount)
	}

	createTestTransaction(t, gdb, 1200, entity.TransactionTypeIncome, testDay(2), "consulting fee", func(txn *entity.Transaction) {
		txn.ContactID = &acme.ID
	})

	reloaded, err = contactRepo.FindByID(ctx, acme.ID)
	if err != nil {
		t.Fatalf("failed to reload contact: %v", err)
	}
	if !reloaded.TotalSpent.Equal(decimal.NewFromInt(500)) {
		t.Errorf("TotalSpent = %s, want 500", reloaded.TotalSpent)
	}
	if !reloaded.TotalReceived.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("TotalReceived = %s, want 1200", reloaded.TotalReceived)
	}
	if reloaded.TransactionCount != 2 {
		t.Errorf("TransactionCount = %d, want 2", reloaded.TransactionCount)
	}
}

func TestTransactionRepositoryUpdateMovesAggregatesBetweenContacts(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	transactionRepo := NewTransactionRepository(gdb)
	contactRepo := NewContactRepository(gdb)

	acme := createTestContact(t, gdb, "Acme Corp", nil)
	globex := createTestContact(t, gdb, "Globex", nil)

	created := createTestTransaction(t, gdb, 300, entity.TransactionTypeExpense, testDay(3), "hosting", func(txn *entity.Transaction) {
		txn.ContactID = &acme.ID
	})

	created.ContactID = &globex.ID
	if _, err := transactionRepo.Update(ctx, created); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	oldContact, err := contactRepo.FindByID(ctx, acme.ID)
	if err != nil {
		t.Fatalf("failed to reload old contact: %v", err)
	}
	if !oldContact.TotalSpent.IsZero() || oldContact.TransactionCount != 0 {
		t.Errorf("old contact still carries aggregates: spent=%s count=%d", oldContact.TotalSpent, oldContact.TransactionCount)
	}

	newContact, err := contactRepo.FindByID(ctx, globex.ID)
	if err != nil {
		t.Fatalf("failed to reload new contact: %v", err)
	}
	if !newContact.TotalSpent.Equal(decimal.NewFromInt(300)) || newContact.TransactionCount != 1 {
		t.Errorf("new contact aggregates wrong: spent=%s count=%d", newContact.TotalSpent, newContact.TransactionCount)
	}
}

func TestTransactionRepositoryUpdateMissingID(t *testing.T) {
	gdb := newTestDB(t)
	transactionRepo := NewTransactionRepository(gdb)

	ghost := entity.NewTransaction(
		decimal.NewFromInt(10),
		entity.CurrencyINR,
		entity.TransactionTypeExpense,
		testDay(1),
		nil, nil, nil,
		"ghost", "",
	)

	if _, err := transactionRepo.Update(context.Background(), ghost); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestTransactionRepositoryDelete(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	transactionRepo := NewTransactionRepository(gdb)
	contactRepo := NewContactRepository(gdb)

	acme := createTestContact(t, gdb, "Acme Corp", nil)
	created := createTestTransaction(t, gdb, 250, entity.TransactionTypeExpense, testDay(4), "courier", func(txn *entity.Transaction) {
		txn.ContactID = &acme.ID
	})

	t.Run("deletes and rescans the contact", func(t *testing.T) {
		deleted, err := transactionRepo.Delete(ctx, created.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if !deleted {
			t.Fatal("expected deleted = true")
		}

		reloaded, err := contactRepo.FindByID(ctx, acme.ID)
		if err != nil {
			t.Fatalf("failed to reload contact: %v", err)
		}
		if !reloaded.TotalSpent.IsZero() || reloaded.TransactionCount != 0 {
			t.Errorf("aggregates not reset: spent=%s count=%d", reloaded.TotalSpent, reloaded.TransactionCount)
		}
	})

	t.Run("missing ID reports false without error", func(t *testing.T) {
		deleted, err := transactionRepo.Delete(ctx, uuid.New())
		if err != nil {
			t.Fatalf("Delete returned error for missing ID: %v", err)
		}
		if deleted {
			t.Error("expected deleted = false for missing ID")
		}
	})
}

func TestTransactionRepositoryFindByFilter(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	transactionRepo := NewTransactionRepository(gdb)

	acme := createTestContact(t, gdb, "Acme Corp", nil)

	createTestTransaction(t, gdb, 500, entity.TransactionTypeExpense, testDay(1), "office rent", nil)
	createTestTransaction(t, gdb, 1000, entity.TransactionTypeIncome, testDay(2), "client payment", func(txn *entity.Transaction) {
		txn.ContactID = &acme.ID
	})
	createTestTransaction(t, gdb, 200, entity.TransactionTypeExpense, testDay(3), "team lunch", func(txn *entity.Transaction) {
		txn.Notes = "monthly team lunch"
	})
	createTestTransaction(t, gdb, 80, entity.TransactionTypeExpense, testDay(10), "software subscription", nil)

	t.Run("unfiltered listing orders newest first with whole-set totals", func(t *testing.T) {
		result, err := transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{}, adapter.TransactionPage{Limit: 50})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 4 {
			t.Errorf("Total = %d, want 4", result.Total)
		}
		if len(result.Transactions) != 4 {
			t.Fatalf("page size = %d, want 4", len(result.Transactions))
		}
		if result.Transactions[0].Transaction.Description != "software subscription" {
			t.Errorf("first row = %s, want software subscription", result.Transactions[0].Transaction.Description)
		}
		if !result.TotalIncome.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("TotalIncome = %s, want 1000", result.TotalIncome)
		}
		if !result.TotalExpenses.Equal(decimal.NewFromInt(780)) {
			t.Errorf("TotalExpenses = %s, want 780", result.TotalExpenses)
		}
		if result.HasMore {
			t.Error("expected HasMore = false when the page holds everything")
		}
	})

	t.Run("filters compose conjunctively", func(t *testing.T) {
		expense := entity.TransactionTypeExpense
		minAmount := decimal.NewFromInt(100)
		filter := adapter.TransactionFilter{
			Type:      &expense,
			MinAmount: &minAmount,
		}

		result, err := transactionRepo.FindByFilter(ctx, filter, adapter.TransactionPage{Limit: 50})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("Total = %d, want 2", result.Total)
		}
	})

	t.Run("search matches notes case-insensitively", func(t *testing.T) {
		result, err := transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{Search: "TEAM"}, adapter.TransactionPage{Limit: 50})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("Total = %d, want 1", result.Total)
		}
		if result.Transactions[0].Transaction.Description != "team lunch" {
			t.Errorf("matched %s, want team lunch", result.Transactions[0].Transaction.Description)
		}
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		start := testDay(2)
		end := testDay(3)
		result, err := transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{StartDate: &start, EndDate: &end}, adapter.TransactionPage{Limit: 50})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("Total = %d, want 2", result.Total)
		}
	})

	t.Run("contact filter resolves referenced names", func(t *testing.T) {
		result, err := transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{ContactID: &acme.ID}, adapter.TransactionPage{Limit: 50})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("Total = %d, want 1", result.Total)
		}
		if result.Transactions[0].ContactName != "Acme Corp" {
			t.Errorf("ContactName = %s, want Acme Corp", result.Transactions[0].ContactName)
		}
	})
}

func TestTransactionRepositoryPagination(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	transactionRepo := NewTransactionRepository(gdb)

	for day := 1; day <= 5; day++ {
		createTestTransaction(t, gdb, int64(day*10), entity.TransactionTypeExpense, testDay(day), "entry", nil)
	}

	firstPage, err := transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{}, adapter.TransactionPage{Skip: 0, Limit: 2})
	if err != nil {
		t.Fatalf("FindByFilter failed: %v", err)
	}
	if len(firstPage.Transactions) != 2 || !firstPage.HasMore {
		t.Fatalf("first page: len=%d hasMore=%v, want 2/true", len(firstPage.Transactions), firstPage.HasMore)
	}

	secondPage, err := transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{}, adapter.TransactionPage{Skip: 2, Limit: 2})
	if err != nil {
		t.Fatalf("FindByFilter failed: %v", err)
	}
	if len(secondPage.Transactions) != 2 || !secondPage.HasMore {
		t.Fatalf("second page: len=%d hasMore=%v, want 2/true", len(secondPage.Transactions), secondPage.HasMore)
	}

	lastPage, err := transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{}, adapter.TransactionPage{Skip: 4, Limit: 2})
	if err != nil {
		t.Fatalf("FindByFilter failed: %v", err)
	}
	if len(lastPage.Transactions) != 1 || lastPage.HasMore {
		t.Fatalf("last page: len=%d hasMore=%v, want 1/false", len(lastPage.Transactions), lastPage.HasMore)
	}

	// Concatenated pages must cover all rows exactly once.
	seen := make(map[uuid.UUID]bool)
	for _, page := range [][]*entity.TransactionWithRefs{firstPage.Transactions, secondPage.Transactions, lastPage.Transactions} {
		for _, txn := range page {
			if seen[txn.Transaction.ID] {
				t.Errorf("transaction %s appeared on two pages", txn.Transaction.ID)
			}
			seen[txn.Transaction.ID] = true
		}
	}
	if len(seen) != 5 {
		t.Errorf("pages covered %d distinct rows, want 5", len(seen))
	}
}

func TestTransactionRepositoryBulkCreate(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	transactionRepo := NewTransactionRepository(gdb)
	contactRepo := NewContactRepository(gdb)

	acme := createTestContact(t, gdb, "Acme Corp", nil)

	batch := make([]*entity.Transaction, 3)
	for i := range batch {
		batch[i] = entity.NewTransaction(
			decimal.NewFromInt(int64(100*(i+1))),
			entity.CurrencyINR,
			entity.TransactionTypeExpense,
			testDay(i+1),
			&acme.ID, nil, nil,
			"bulk entry", "",
		)
	}

	if err := transactionRepo.BulkCreate(ctx, batch); err != nil {
		t.Fatalf("BulkCreate failed: %v", err)
	}

	reloaded, err := contactRepo.FindByID(ctx, acme.ID)
	if err != nil {
		t.Fatalf("failed to reload contact: %v", err)
	}
	if !reloaded.TotalSpent.Equal(decimal.NewFromInt(600)) {
		t.Errorf("TotalSpent = %s, want 600", reloaded.TotalSpent)
	}
	if reloaded.TransactionCount != 3 {
		t.Errorf("TransactionCount = %d, want 3", reloaded.TransactionCount)
	}
}

func TestTransactionRepositoryFindByIDMissing(t *testing.T) {
	gdb := newTestDB(t)

	if _, err := NewTransactionRepository(gdb).FindByID(context.Background(), uuid.New()); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}
