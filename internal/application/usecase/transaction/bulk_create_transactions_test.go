// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/config"
	"github.com/finance-ledger/backend/internal/application/usecase/contact"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/infra/db"
	"github.com/finance-ledger/backend/internal/integration/persistence"
)

func newBulkUseCase(t *testing.T) (*BulkCreateTransactionsUseCase, *gorm.DB) {
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
	useCase := NewBulkCreateTransactionsUseCase(
		persistence.NewTransactionRepository(gdb),
		contact.NewResolveContactUseCase(persistence.NewContactRepository(gdb)),
	)
	return useCase, gdb
}

func TestBulkCreateCarriesReviewAnnotations(t *testing.T) {
	useCase, gdb := newBulkUseCase(t)
	ctx := context.Background()
	transactionRepo := persistence.NewTransactionRepository(gdb)

	rawInputID := uuid.New()
	duplicateID := uuid.New()
	reason := entity.ReviewReasonPotentialDuplicate

	output, err := useCase.Execute(ctx, BulkCreateTransactionsInput{
		RawInputID: &rawInputID,
		Items: []BulkTransactionItem{
			{
				Amount:                decimal.NewFromInt(250),
				Type:                  entity.TransactionTypeExpense,
				Description:           "flagged entry",
				NeedsReview:           true,
				ReviewReason:          &reason,
				PotentialDuplicateIDs: []uuid.UUID{duplicateID},
			},
			{
				Amount:      decimal.NewFromInt(900),
				Type:        entity.TransactionTypeIncome,
				Description: "clean entry",
			},
		},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if output.CreatedCount != 2 {
		t.Fatalf("CreatedCount = %d, want 2", output.CreatedCount)
	}

	t.Run("duplicate list survives persistence", func(t *testing.T) {
		stored, err := transactionRepo.FindByID(ctx, output.Transactions[0].ID)
		if err != nil {
			t.Fatalf("failed to reload flagged transaction: %v", err)
		}
		if !stored.NeedsReview {
			t.Error("expected NeedsReview = true")
		}
		if stored.ReviewReason == nil || *stored.ReviewReason != entity.ReviewReasonPotentialDuplicate {
			t.Errorf("ReviewReason = %v, want potential_duplicate", stored.ReviewReason)
		}
		if len(stored.PotentialDuplicateIDs) != 1 || stored.PotentialDuplicateIDs[0] != duplicateID {
			t.Errorf("PotentialDuplicateIDs = %v, want [%s]", stored.PotentialDuplicateIDs, duplicateID)
		}
	})

	t.Run("batch raw input id is stamped onto every item", func(t *testing.T) {
		for _, created := range output.Transactions {
			stored, err := transactionRepo.FindByID(ctx, created.ID)
			if err != nil {
				t.Fatalf("failed to reload transaction: %v", err)
			}
			if stored.RawInputID == nil || *stored.RawInputID != rawInputID {
				t.Errorf("RawInputID = %v, want %s", stored.RawInputID, rawInputID)
			}
		}
	})
}
