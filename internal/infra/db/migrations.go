// Package db provides database connection and management functionality.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// MigrationRecord is one row of the migrations ledger table.
type MigrationRecord struct {
	Name      string    `gorm:"type:varchar(100);primaryKey"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the MigrationRecord.
func (MigrationRecord) TableName() string {
	return "migrations"
}

// migration is one named, forward-only schema change. The up body does
// not need to be idempotent; the ledger guarantees it runs exactly once.
type migration struct {
	name string
	up   func(tx *gorm.DB) error
}

// migrations is the ordered list applied by RunMigrations. Append only;
// never reorder or rename a recorded entry.
var migrations = []migration{
	{name: "0001_create_schema", up: createSchema},
	{name: "0002_seed_system_categories", up: seedSystemCategories},
}

// RunMigrations applies every migration not yet recorded in the ledger
// table. A missing ledger table signals a fresh database, not an error.
// Each up body and its ledger insert run in one transaction, so a
// failure leaves the database safely re-runnable on next start.
func (d *Database) RunMigrations() error {
	applied := make(map[string]bool)
	if d.db.Migrator().HasTable(&MigrationRecord{}) {
		var names []string
		if err := d.db.Model(&MigrationRecord{}).Pluck("name", &names).Error; err != nil {
			return fmt.Errorf("failed to read migrations ledger: %w", err)
		}
		for _, name := range names {
			applied[name] = true
		}
	} else if err := d.db.AutoMigrate(&MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to create migrations ledger: %w", err)
	}

	for _, m := range migrations {
		if applied[m.name] {
			continue
		}

		err := d.db.Transaction(func(tx *gorm.DB) error {
			if err := m.up(tx); err != nil {
				return err
			}
			return tx.Create(&MigrationRecord{
				Name:      m.name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}

		slog.Info("Applied migration", "name", m.name)
	}

	return nil
}

// ResetDatabase drops every table including the migrations ledger.
// Development use only; not part of the guaranteed-safe API surface.
func (d *Database) ResetDatabase() error {
	return d.db.Migrator().DropTable(
		&model.TransactionModel{},
		&model.RecurringTransactionModel{},
		&model.ContactModel{},
		&model.ProjectModel{},
		&model.CategoryModel{},
		&MigrationRecord{},
	)
}

func createSchema(tx *gorm.DB) error {
	return tx.AutoMigrate(
		&model.CategoryModel{},
		&model.ProjectModel{},
		&model.ContactModel{},
		&model.TransactionModel{},
		&model.RecurringTransactionModel{},
	)
}

// systemCategorySeed is the fixed category set every fresh ledger starts with.
var systemCategorySeed = []struct {
	Name  string
	Type  entity.CategoryType
	Icon  string
	Color string
}{
	{"Salary", entity.CategoryTypeIncome, "wallet", "#22C55E"},
	{"Client Payment", entity.CategoryTypeIncome, "briefcase", "#16A34A"},
	{"Interest", entity.CategoryTypeIncome, "percent", "#15803D"},
	{"Other Income", entity.CategoryTypeIncome, "coins", "#65A30D"},
	{"Rent", entity.CategoryTypeExpense, "home", "#EF4444"},
	{"Utilities", entity.CategoryTypeExpense, "bolt", "#F97316"},
	{"Supplies", entity.CategoryTypeExpense, "shopping-cart", "#F59E0B"},
	{"Travel", entity.CategoryTypeExpense, "plane", "#8B5CF6"},
	{"Food & Dining", entity.CategoryTypeExpense, "utensils", "#EC4899"},
	{"Software", entity.CategoryTypeExpense, "credit-card", "#3B82F6"},
	{"Professional Services", entity.CategoryTypeExpense, "briefcase", "#6366F1"},
	{"Taxes", entity.CategoryTypeExpense, "receipt", "#64748B"},
	{"Other Expense", entity.CategoryTypeExpense, "tag", "#94A3B8"},
}

func seedSystemCategories(tx *gorm.DB) error {
	for _, seed := range systemCategorySeed {
		category := entity.NewCategory(seed.Name, seed.Type, seed.Icon, seed.Color)
		category.IsSystem = true
		if err := tx.Create(model.CategoryFromEntity(category)).Error; err != nil {
			return err
		}
	}
	return nil
}
