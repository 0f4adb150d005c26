// Package dataexchange contains export and import use cases.
package dataexchange

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/config"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/infra/db"
	"github.com/finance-ledger/backend/internal/integration/persistence"
)

type testStore struct {
	gdb        *gorm.DB
	exportData *ExportDataUseCase
	importData *ImportDataUseCase
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	database, err := db.NewSQLiteConnection(&config.DatabaseConfig{Path: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := database.RunMigrations(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	gdb := database.DB()
	categoryRepo := persistence.NewCategoryRepository(gdb)
	projectRepo := persistence.NewProjectRepository(gdb)
	contactRepo := persistence.NewContactRepository(gdb)
	transactionRepo := persistence.NewTransactionRepository(gdb)
	recurringRepo := persistence.NewRecurringRepository(gdb)

	return &testStore{
		gdb:        gdb,
		exportData: NewExportDataUseCase(categoryRepo, projectRepo, contactRepo, transactionRepo, recurringRepo),
		importData: NewImportDataUseCase(categoryRepo, projectRepo, contactRepo, transactionRepo, recurringRepo),
	}
}

func seedLedger(t *testing.T, store *testStore) {
	t.Helper()
	ctx := context.Background()

	contactRepo := persistence.NewContactRepository(store.gdb)
	transactionRepo := persistence.NewTransactionRepository(store.gdb)
	recurringRepo := persistence.NewRecurringRepository(store.gdb)

	contact, err := contactRepo.Create(ctx, entity.NewContact("Acme Corp", []string{"Acme"}))
	if err != nil {
		t.Fatalf("failed to seed contact: %v", err)
	}

	transaction := entity.NewTransaction(
		decimal.NewFromInt(500),
		entity.CurrencyINR,
		entity.TransactionTypeExpense,
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		&contact.ID, nil, nil,
		"supplies", "",
	)
	if _, err := transactionRepo.Create(ctx, transaction); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}

	template := entity.NewRecurringTransaction(
		"Hosting",
		decimal.NewFromInt(20),
		entity.CurrencyUSD,
		entity.TransactionTypeExpense,
		entity.FrequencyMonthly,
		&contact.ID, nil, nil,
		"", "",
	)
	if _, err := recurringRepo.Create(ctx, template); err != nil {
		t.Fatalf("failed to seed recurring template: %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := newTestStore(t)
	seedLedger(t, source)

	exported, err := source.exportData.Execute(ctx)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	doc := exported.Document
	if doc.Metadata.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion = %d, want %d", doc.Metadata.SchemaVersion, SchemaVersion)
	}
	// 13 seeded system categories plus the seeded rows.
	if len(doc.Categories) != 13 {
		t.Errorf("exported %d categories, want 13", len(doc.Categories))
	}
	if len(doc.Contacts) != 1 || len(doc.Transactions) != 1 || len(doc.RecurringTransactions) != 1 {
		t.Fatalf("export incomplete: %d contacts, %d transactions, %d recurring",
			len(doc.Contacts), len(doc.Transactions), len(doc.RecurringTransactions))
	}

	target := newTestStore(t)
	result, err := target.importData.Execute(ctx, ImportDataInput{Document: doc})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	t.Run("counts new and skipped rows", func(t *testing.T) {
		// The target already holds the 13 system categories by ID-independent
		// seeding, so they import as new rows under their exported IDs.
		if result.Categories.Imported != 13 {
			t.Errorf("Categories.Imported = %d, want 13", result.Categories.Imported)
		}
		if result.Contacts.Imported != 1 || result.Transactions.Imported != 1 || result.RecurringTransactions.Imported != 1 {
			t.Errorf("imported counts = %d/%d/%d, want 1/1/1",
				result.Contacts.Imported, result.Transactions.Imported, result.RecurringTransactions.Imported)
		}
	})

	t.Run("import recomputes contact aggregates", func(t *testing.T) {
		contactRepo := persistence.NewContactRepository(target.gdb)
		imported, err := contactRepo.FindByID(ctx, doc.Contacts[0].ID)
		if err != nil {
			t.Fatalf("failed to load imported contact: %v", err)
		}
		if !imported.TotalSpent.Equal(decimal.NewFromInt(500)) {
			t.Errorf("TotalSpent = %s, want 500", imported.TotalSpent)
		}
		if imported.TransactionCount != 1 {
			t.Errorf("TransactionCount = %d, want 1", imported.TransactionCount)
		}
	})

	t.Run("reimport skips everything", func(t *testing.T) {
		again, err := target.importData.Execute(ctx, ImportDataInput{Document: doc})
		if err != nil {
			t.Fatalf("reimport failed: %v", err)
		}
		if again.Transactions.Imported != 0 || again.Transactions.Skipped != 1 {
			t.Errorf("reimport transactions = %d imported/%d skipped, want 0/1",
				again.Transactions.Imported, again.Transactions.Skipped)
		}
		if again.Contacts.Skipped != 1 || again.RecurringTransactions.Skipped != 1 {
			t.Errorf("reimport skipped = %d contacts/%d recurring, want 1/1",
				again.Contacts.Skipped, again.RecurringTransactions.Skipped)
		}
	})
}

func TestImportRejectsUnsupportedSchemaVersion(t *testing.T) {
	store := newTestStore(t)

	doc := &Document{Metadata: DocumentMetadata{SchemaVersion: SchemaVersion + 1}}
	if _, err := store.importData.Execute(context.Background(), ImportDataInput{Document: doc}); !errors.Is(err, ErrUnsupportedSchemaVersion) {
		t.Errorf("expected ErrUnsupportedSchemaVersion, got %v", err)
	}
}

func TestImportRequiresDocument(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.importData.Execute(context.Background(), ImportDataInput{}); err == nil {
		t.Error("expected error for nil document")
	}
}
