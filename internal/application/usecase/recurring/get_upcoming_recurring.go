// Package recurring contains recurring transaction use cases.
package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// DefaultUpcomingHorizonDays is the default lookahead window.
const DefaultUpcomingHorizonDays = 7

// GetUpcomingRecurringInput represents the input for the upcoming view.
type GetUpcomingRecurringInput struct {
	Now         *time.Time
	HorizonDays int // Optional, defaults to DefaultUpcomingHorizonDays
}

// GetUpcomingRecurringOutput represents the output of the upcoming view.
type GetUpcomingRecurringOutput struct {
	Recurring []*entity.RecurringTransaction
}

// GetUpcomingRecurringUseCase lists active templates due within the
// horizon. Overdue templates stay in the view until materialized, so
// nothing silently drops off.
type GetUpcomingRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewGetUpcomingRecurringUseCase creates a new GetUpcomingRecurringUseCase instance.
func NewGetUpcomingRecurringUseCase(recurringRepo adapter.RecurringRepository) *GetUpcomingRecurringUseCase {
	return &GetUpcomingRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the upcoming listing.
func (uc *GetUpcomingRecurringUseCase) Execute(ctx context.Context, input GetUpcomingRecurringInput) (*GetUpcomingRecurringOutput, error) {
	now := time.Now().UTC()
	if input.Now != nil {
		now = *input.Now
	}
	horizon := input.HorizonDays
	if horizon <= 0 {
		horizon = DefaultUpcomingHorizonDays
	}

	recurring, err := uc.recurringRepo.FindUpcoming(ctx, now, horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming recurring transactions: %w", err)
	}

	return &GetUpcomingRecurringOutput{
		Recurring: recurring,
	}, nil
}
