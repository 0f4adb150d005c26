// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// All present fields compose conjunctively; absent fields impose no
// constraint. Search matches description and notes case-insensitively.
type TransactionFilter struct {
	Type       *entity.TransactionType
	ContactID  *uuid.UUID
	CategoryID *uuid.UUID
	ProjectID  *uuid.UUID
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionPage defines offset-based pagination options.
type TransactionPage struct {
	Skip  int
	Limit int
}

// TransactionListResult represents one page of a filtered listing.
// Totals are computed over the whole filtered set, not just the page.
type TransactionListResult struct {
	Transactions  []*entity.TransactionWithRefs
	Total         int64
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	HasMore       bool
}

// TransactionRepository defines the interface for transaction persistence
// operations. Mutating operations that touch a contact association run
// the contact aggregate recalculation inside the same store transaction
// as the triggering write.
type TransactionRepository interface {
	// Create persists a new transaction, recalculates the referenced
	// contact's aggregates in the same store transaction, and returns
	// the freshly-read row.
	Create(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)

	// BulkCreate persists a batch of transactions in one store
	// transaction and recalculates aggregates once per distinct contact.
	BulkCreate(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByIDWithRefs retrieves a transaction with referenced display names.
	FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.TransactionWithRefs, error)

	// FindByFilter retrieves one page of transactions ordered by
	// (date DESC, created_at DESC, id DESC) together with whole-set totals.
	FindByFilter(ctx context.Context, filter TransactionFilter, page TransactionPage) (*TransactionListResult, error)

	// Update persists changes to an existing transaction, recalculates
	// aggregates for every distinct contact touched (old and new), and
	// returns the freshly-read row. Returns ErrTransactionNotFound for
	// a missing ID.
	Update(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)

	// Delete removes a transaction unconditionally and recalculates the
	// referenced contact's aggregates. Returns false without error when
	// the ID does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
