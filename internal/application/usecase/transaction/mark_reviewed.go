// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// MarkReviewedInput represents the input for clearing review flags.
type MarkReviewedInput struct {
	ID uuid.UUID
}

// MarkReviewedOutput represents the output of clearing review flags.
type MarkReviewedOutput struct {
	Transaction *entity.Transaction
}

// MarkReviewedUseCase clears all review annotations on a transaction.
type MarkReviewedUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewMarkReviewedUseCase creates a new MarkReviewedUseCase instance.
func NewMarkReviewedUseCase(transactionRepo adapter.TransactionRepository) *MarkReviewedUseCase {
	return &MarkReviewedUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute clears needsReview, reviewReason, confidence and the
// potential duplicate list in one update.
func (uc *MarkReviewedUseCase) Execute(ctx context.Context, input MarkReviewedInput) (*MarkReviewedOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	transaction.NeedsReview = false
	transaction.ReviewReason = nil
	transaction.Confidence = nil
	transaction.PotentialDuplicateIDs = nil

	updated, err := uc.transactionRepo.Update(ctx, transaction)
	if err != nil {
		return nil, fmt.Errorf("failed to mark transaction reviewed: %w", err)
	}

	return &MarkReviewedOutput{
		Transaction: updated,
	}, nil
}
