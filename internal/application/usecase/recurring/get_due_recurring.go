// Package recurring contains recurring transaction use cases.
package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// GetDueRecurringInput represents the input for listing due templates.
// Now defaults to the current time.
type GetDueRecurringInput struct {
	Now *time.Time
}

// GetDueRecurringOutput represents the output of listing due templates.
type GetDueRecurringOutput struct {
	Recurring []*entity.RecurringTransaction
}

// GetDueRecurringUseCase lists active templates whose next due date
// has passed.
type GetDueRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewGetDueRecurringUseCase creates a new GetDueRecurringUseCase instance.
func NewGetDueRecurringUseCase(recurringRepo adapter.RecurringRepository) *GetDueRecurringUseCase {
	return &GetDueRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the due listing.
func (uc *GetDueRecurringUseCase) Execute(ctx context.Context, input GetDueRecurringInput) (*GetDueRecurringOutput, error) {
	now := time.Now().UTC()
	if input.Now != nil {
		now = *input.Now
	}

	recurring, err := uc.recurringRepo.FindDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due recurring transactions: %w", err)
	}

	return &GetDueRecurringOutput{
		Recurring: recurring,
	}, nil
}
