// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

const (
	// DefaultPageLimit is applied when the caller omits the limit or
	// passes zero or a negative value.
	DefaultPageLimit = 50
	// MaxPageLimit caps the page size.
	MaxPageLimit = 500
)

// ListTransactionsInput represents the input for transaction listing.
type ListTransactionsInput struct {
	Filter adapter.TransactionFilter
	Skip   int
	Limit  int
}

// ListTransactionsOutput represents one page of a filtered listing.
// Totals cover the whole filtered set, not just the returned page.
type ListTransactionsOutput struct {
	Transactions  []*entity.TransactionWithRefs
	Total         int64
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	HasMore       bool
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, input.Filter, adapter.TransactionPage{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions:  result.Transactions,
		Total:         result.Total,
		TotalIncome:   result.TotalIncome,
		TotalExpenses: result.TotalExpenses,
		HasMore:       result.HasMore,
	}, nil
}
