// Package recurring contains recurring transaction use cases.
package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
)

// DeleteRecurringInput represents the input for template deletion.
type DeleteRecurringInput struct {
	ID uuid.UUID
}

// DeleteRecurringOutput represents the output of template deletion.
type DeleteRecurringOutput struct {
	Deleted bool
}

// DeleteRecurringUseCase handles recurring template deletion logic.
type DeleteRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewDeleteRecurringUseCase creates a new DeleteRecurringUseCase instance.
func NewDeleteRecurringUseCase(recurringRepo adapter.RecurringRepository) *DeleteRecurringUseCase {
	return &DeleteRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the template deletion. Materialized transactions
// keep their recurring group reference and are never touched.
func (uc *DeleteRecurringUseCase) Execute(ctx context.Context, input DeleteRecurringInput) (*DeleteRecurringOutput, error) {
	deleted, err := uc.recurringRepo.Delete(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete recurring transaction: %w", err)
	}

	return &DeleteRecurringOutput{
		Deleted: deleted,
	}, nil
}
