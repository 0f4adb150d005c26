// Package recurring contains recurring transaction use cases.
package recurring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/config"
	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/infra/db"
	"github.com/finance-ledger/backend/internal/integration/persistence"
)

func newTestRecurringRepo(t *testing.T) adapter.RecurringRepository {
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
	return persistence.NewRecurringRepository(database.DB())
}

func seedMonthlyTemplate(t *testing.T, repo adapter.RecurringRepository, lastCreated time.Time) *entity.RecurringTransaction {
	t.Helper()

	template := entity.NewRecurringTransaction(
		"Office Rent",
		decimal.NewFromInt(15000),
		entity.CurrencyINR,
		entity.TransactionTypeExpense,
		entity.FrequencyMonthly,
		nil, nil, nil,
		"monthly office rent", "",
	)
	template.LastCreatedAt = &lastCreated
	due := advance(template.Frequency, lastCreated)
	template.NextDueDate = &due

	created, err := repo.Create(context.Background(), template)
	if err != nil {
		t.Fatalf("failed to seed template: %v", err)
	}
	return created
}

func TestMaterializeRecurringAdvancesSchedule(t *testing.T) {
	repo := newTestRecurringRepo(t)
	useCase := NewMaterializeRecurringUseCase(repo)
	ctx := context.Background()

	anchor := date(2024, time.January, 15)
	template := seedMonthlyTemplate(t, repo, anchor)

	effectiveDate := date(2024, time.February, 15)
	output, err := useCase.Execute(ctx, MaterializeRecurringInput{
		ID:            template.ID,
		EffectiveDate: &effectiveDate,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	t.Run("occurrence copies the template", func(t *testing.T) {
		if !output.Transaction.Amount.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("Amount = %s, want 15000", output.Transaction.Amount)
		}
		if !output.Transaction.Date.Equal(effectiveDate) {
			t.Errorf("Date = %s, want %s", output.Transaction.Date, effectiveDate)
		}
		if !output.Transaction.IsRecurring {
			t.Error("expected IsRecurring = true")
		}
		if output.Transaction.RecurringGroupID == nil || *output.Transaction.RecurringGroupID != template.ID {
			t.Errorf("RecurringGroupID = %v, want %s", output.Transaction.RecurringGroupID, template.ID)
		}
	})

	t.Run("schedule advances from the effective date", func(t *testing.T) {
		reloaded, err := repo.FindByID(ctx, template.ID)
		if err != nil {
			t.Fatalf("failed to reload template: %v", err)
		}
		if reloaded.LastCreatedAt == nil || !reloaded.LastCreatedAt.Equal(effectiveDate) {
			t.Errorf("LastCreatedAt = %v, want %s", reloaded.LastCreatedAt, effectiveDate)
		}
		wantDue := date(2024, time.March, 15)
		if reloaded.NextDueDate == nil || !reloaded.NextDueDate.Equal(wantDue) {
			t.Errorf("NextDueDate = %v, want %s", reloaded.NextDueDate, wantDue)
		}
	})
}

func TestMaterializeRecurringOverrideAmount(t *testing.T) {
	repo := newTestRecurringRepo(t)
	useCase := NewMaterializeRecurringUseCase(repo)
	ctx := context.Background()

	template := seedMonthlyTemplate(t, repo, date(2024, time.January, 15))

	t.Run("override applies to this occurrence only", func(t *testing.T) {
		override := decimal.NewFromInt(16500)
		effectiveDate := date(2024, time.February, 15)

		output, err := useCase.Execute(ctx, MaterializeRecurringInput{
			ID:             template.ID,
			EffectiveDate:  &effectiveDate,
			OverrideAmount: &override,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if !output.Transaction.Amount.Equal(override) {
			t.Errorf("Amount = %s, want 16500", output.Transaction.Amount)
		}

		reloaded, err := repo.FindByID(ctx, template.ID)
		if err != nil {
			t.Fatalf("failed to reload template: %v", err)
		}
		if !reloaded.Amount.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("template amount = %s, want 15000 (untouched)", reloaded.Amount)
		}
	})

	t.Run("non-positive override is rejected", func(t *testing.T) {
		override := decimal.Zero
		_, err := useCase.Execute(ctx, MaterializeRecurringInput{
			ID:             template.ID,
			OverrideAmount: &override,
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
			t.Errorf("expected ErrInvalidTransactionAmount, got %v", err)
		}
	})
}

func TestMaterializeRecurringRejectsInactive(t *testing.T) {
	repo := newTestRecurringRepo(t)
	useCase := NewMaterializeRecurringUseCase(repo)
	ctx := context.Background()

	template := seedMonthlyTemplate(t, repo, date(2024, time.January, 15))
	template.IsActive = false
	if _, err := repo.Update(ctx, template); err != nil {
		t.Fatalf("failed to deactivate template: %v", err)
	}

	if _, err := useCase.Execute(ctx, MaterializeRecurringInput{ID: template.ID}); !errors.Is(err, domainerror.ErrRecurringInactive) {
		t.Errorf("expected ErrRecurringInactive, got %v", err)
	}
}
