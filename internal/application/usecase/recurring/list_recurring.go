// Package recurring contains recurring transaction use cases.
package recurring

import (
	"context"
	"fmt"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ListRecurringInput represents the input for template listing.
type ListRecurringInput struct {
	IsActive *bool
	Type     *entity.TransactionType
}

// ListRecurringOutput represents the output of template listing.
type ListRecurringOutput struct {
	Recurring []*entity.RecurringTransaction
}

// ListRecurringUseCase handles recurring template listing logic.
type ListRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewListRecurringUseCase creates a new ListRecurringUseCase instance.
func NewListRecurringUseCase(recurringRepo adapter.RecurringRepository) *ListRecurringUseCase {
	return &ListRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the template listing.
func (uc *ListRecurringUseCase) Execute(ctx context.Context, input ListRecurringInput) (*ListRecurringOutput, error) {
	recurring, err := uc.recurringRepo.FindAll(ctx, adapter.RecurringFilter{
		IsActive: input.IsActive,
		Type:     input.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}

	return &ListRecurringOutput{
		Recurring: recurring,
	}, nil
}
