// Package dashboard contains reporting and aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the period summary.
type GetSummaryInput struct {
	Period      TimePeriod
	CustomStart *time.Time
	CustomEnd   *time.Time
	ProjectID   *uuid.UUID
	ContactID   *uuid.UUID
}

// GetSummaryOutput represents income/expense/net totals over a period.
type GetSummaryOutput struct {
	Period           TimePeriod
	Start            *time.Time
	End              *time.Time
	Totals           entity.TransactionTotals
	TransactionCount int64
}

// GetSummaryUseCase computes aggregate totals over a resolved period.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute resolves the period and computes totals over the whole
// filtered set. The listing limit is irrelevant here; only the
// whole-set totals and count are read from the result.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	dateRange, err := ResolveTimePeriod(input.Period, time.Now().UTC(), input.CustomStart, input.CustomEnd)
	if err != nil {
		return nil, err
	}

	filter := adapter.TransactionFilter{
		ProjectID: input.ProjectID,
		ContactID: input.ContactID,
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter, adapter.TransactionPage{Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	return &GetSummaryOutput{
		Period: input.Period,
		Start:  dateRange.Start,
		End:    dateRange.End,
		Totals: entity.TransactionTotals{
			IncomeTotal:  result.TotalIncome,
			ExpenseTotal: result.TotalExpenses,
			NetTotal:     result.TotalIncome.Sub(result.TotalExpenses),
		},
		TransactionCount: result.Total,
	}, nil
}
