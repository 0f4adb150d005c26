// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/config"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/infra/db"
)

// newTestDB opens a fresh in-memory database with the full schema and
// seed data applied.
func newTestDB(t *testing.T) *gorm.DB {
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
	return database.DB()
}

func createTestContact(t *testing.T, gdb *gorm.DB, name string, aliases []string) *entity.Contact {
	t.Helper()

	contact, err := NewContactRepository(gdb).Create(context.Background(), entity.NewContact(name, aliases))
	if err != nil {
		t.Fatalf("failed to create contact %s: %v", name, err)
	}
	return contact
}

func createTestCategory(t *testing.T, gdb *gorm.DB, name string, categoryType entity.CategoryType) *entity.Category {
	t.Helper()

	category, err := NewCategoryRepository(gdb).Create(
		context.Background(),
		entity.NewCategory(name, categoryType, entity.DefaultCategoryIcon, entity.DefaultCategoryColor),
	)
	if err != nil {
		t.Fatalf("failed to create category %s: %v", name, err)
	}
	return category
}

func createTestProject(t *testing.T, gdb *gorm.DB, name string) *entity.Project {
	t.Helper()

	project, err := NewProjectRepository(gdb).Create(
		context.Background(),
		entity.NewProject(name, entity.ProjectTypeService, entity.ProjectStatusActive, "", entity.DefaultProjectColor, nil, entity.BaseCurrency),
	)
	if err != nil {
		t.Fatalf("failed to create project %s: %v", name, err)
	}
	return project
}

func createTestTransaction(
	t *testing.T,
	gdb *gorm.DB,
	amount int64,
	transactionType entity.TransactionType,
	date time.Time,
	description string,
	mutate func(*entity.Transaction),
) *entity.Transaction {
	t.Helper()

	transaction := entity.NewTransaction(
		decimal.NewFromInt(amount),
		entity.CurrencyINR,
		transactionType,
		date,
		nil, nil, nil,
		description, "",
	)
	if mutate != nil {
		mutate(transaction)
	}

	created, err := NewTransactionRepository(gdb).Create(context.Background(), transaction)
	if err != nil {
		t.Fatalf("failed to create transaction %s: %v", description, err)
	}
	return created
}

func testDay(day int) time.Time {
	return time.Date(2025, time.June, day, 12, 0, 0, 0, time.UTC)
}
