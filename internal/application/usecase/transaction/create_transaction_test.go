// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/config"
	"github.com/finance-ledger/backend/internal/application/usecase/contact"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/infra/db"
	"github.com/finance-ledger/backend/internal/integration/persistence"
)

func newCreateUseCase(t *testing.T) (*CreateTransactionUseCase, *gorm.DB) {
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
	useCase := NewCreateTransactionUseCase(
		persistence.NewTransactionRepository(gdb),
		persistence.NewCategoryRepository(gdb),
		persistence.NewProjectRepository(gdb),
		contact.NewResolveContactUseCase(persistence.NewContactRepository(gdb)),
	)
	return useCase, gdb
}

func TestCreateTransactionValidation(t *testing.T) {
	useCase, _ := newCreateUseCase(t)
	ctx := context.Background()

	valid := CreateTransactionInput{
		Amount:      decimal.NewFromInt(100),
		Type:        entity.TransactionTypeExpense,
		Description: "supplies",
	}

	tests := []struct {
		name    string
		mutate  func(*CreateTransactionInput)
		wantErr error
	}{
		{
			name:    "zero amount",
			mutate:  func(in *CreateTransactionInput) { in.Amount = decimal.Zero },
			wantErr: domainerror.ErrInvalidTransactionAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-5) },
			wantErr: domainerror.ErrInvalidTransactionAmount,
		},
		{
			name:    "unsupported currency",
			mutate:  func(in *CreateTransactionInput) { in.Currency = "EUR" },
			wantErr: domainerror.ErrInvalidCurrency,
		},
		{
			name:    "invalid type",
			mutate:  func(in *CreateTransactionInput) { in.Type = "transfer" },
			wantErr: domainerror.ErrInvalidTransactionType,
		},
		{
			name:    "description too long",
			mutate:  func(in *CreateTransactionInput) { in.Description = strings.Repeat("x", MaxDescriptionLength+1) },
			wantErr: domainerror.ErrDescriptionTooLong,
		},
		{
			name:    "notes too long",
			mutate:  func(in *CreateTransactionInput) { in.Notes = strings.Repeat("x", MaxNotesLength+1) },
			wantErr: domainerror.ErrNotesTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			if _, err := useCase.Execute(ctx, input); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateTransactionDefaults(t *testing.T) {
	useCase, _ := newCreateUseCase(t)
	ctx := context.Background()

	before := time.Now().UTC()
	output, err := useCase.Execute(ctx, CreateTransactionInput{
		Amount:      decimal.NewFromInt(100),
		Type:        entity.TransactionTypeExpense,
		Description: "supplies",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if output.Transaction.Currency != entity.BaseCurrency {
		t.Errorf("Currency = %s, want base currency", output.Transaction.Currency)
	}
	if output.Transaction.Date.Before(before) {
		t.Errorf("Date = %s, expected it defaulted to now", output.Transaction.Date)
	}
	if !output.Transaction.AmountInBaseCurrency.Equal(decimal.NewFromInt(100)) {
		t.Errorf("AmountInBaseCurrency = %s, want 100", output.Transaction.AmountInBaseCurrency)
	}
}

func TestCreateTransactionResolvesContactName(t *testing.T) {
	useCase, gdb := newCreateUseCase(t)
	ctx := context.Background()
	contactRepo := persistence.NewContactRepository(gdb)

	t.Run("creates a missing contact", func(t *testing.T) {
		output, err := useCase.Execute(ctx, CreateTransactionInput{
			Amount:      decimal.NewFromInt(200),
			Type:        entity.TransactionTypeExpense,
			ContactName: "Acme Corp",
			Description: "supplies",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if !output.ContactCreated {
			t.Error("expected ContactCreated = true for an unknown name")
		}
		if output.Transaction.ContactID == nil {
			t.Fatal("expected a contact to be linked")
		}

		linked, err := contactRepo.FindByID(ctx, *output.Transaction.ContactID)
		if err != nil {
			t.Fatalf("failed to load resolved contact: %v", err)
		}
		if linked.Name != "Acme Corp" {
			t.Errorf("resolved contact = %s, want Acme Corp", linked.Name)
		}
		if linked.TransactionCount != 1 {
			t.Errorf("TransactionCount = %d, want 1", linked.TransactionCount)
		}
	})

	t.Run("reuses an existing contact by name", func(t *testing.T) {
		output, err := useCase.Execute(ctx, CreateTransactionInput{
			Amount:      decimal.NewFromInt(300),
			Type:        entity.TransactionTypeExpense,
			ContactName: "acme corp",
			Description: "more supplies",
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.ContactCreated {
			t.Error("expected ContactCreated = false for a known name")
		}

		linked, err := contactRepo.FindByID(ctx, *output.Transaction.ContactID)
		if err != nil {
			t.Fatalf("failed to load resolved contact: %v", err)
		}
		if linked.TransactionCount != 2 {
			t.Errorf("TransactionCount = %d, want 2", linked.TransactionCount)
		}
	})
}

func TestCreateTransactionCarriesRawInputID(t *testing.T) {
	useCase, gdb := newCreateUseCase(t)
	ctx := context.Background()

	rawInputID := uuid.New()
	output, err := useCase.Execute(ctx, CreateTransactionInput{
		Amount:      decimal.NewFromInt(100),
		Type:        entity.TransactionTypeExpense,
		Description: "parsed entry",
		RawInputID:  &rawInputID,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	stored, err := persistence.NewTransactionRepository(gdb).FindByID(ctx, output.Transaction.ID)
	if err != nil {
		t.Fatalf("failed to reload transaction: %v", err)
	}
	if stored.RawInputID == nil || *stored.RawInputID != rawInputID {
		t.Errorf("RawInputID = %v, want %s", stored.RawInputID, rawInputID)
	}
}

func TestCreateTransactionRejectsMissingReferences(t *testing.T) {
	useCase, _ := newCreateUseCase(t)
	ctx := context.Background()

	ghost := entity.NewCategory("Ghost", entity.CategoryTypeExpense, entity.DefaultCategoryIcon, entity.DefaultCategoryColor)

	_, err := useCase.Execute(ctx, CreateTransactionInput{
		Amount:      decimal.NewFromInt(50),
		Type:        entity.TransactionTypeExpense,
		CategoryID:  &ghost.ID,
		Description: "phantom",
	})
	if !errors.Is(err, domainerror.ErrCategoryNotFoundForTransaction) {
		t.Errorf("expected ErrCategoryNotFoundForTransaction, got %v", err)
	}
}
