// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/application/usecase/contact"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// BulkTransactionItem is one entry in a bulk creation request.
// Review annotations carry through from the parser when the batch
// originated from a parse run.
type BulkTransactionItem struct {
	Amount       decimal.Decimal
	Currency     entity.Currency
	Type         entity.TransactionType
	Date         time.Time
	ContactName  string
	CategoryID   *uuid.UUID
	ProjectID    *uuid.UUID
	Description  string
	Notes        string
	NeedsReview           bool
	Confidence            *float64
	ReviewReason          *entity.ReviewReason
	PotentialDuplicateIDs []uuid.UUID
}

// BulkCreateTransactionsInput represents the input for bulk creation.
// RawInputID, when set, is stamped onto every created transaction so
// the whole batch traces back to the raw text it was parsed from.
type BulkCreateTransactionsInput struct {
	Items      []BulkTransactionItem
	RawInputID *uuid.UUID
}

// BulkCreateTransactionsOutput represents the output of bulk creation.
type BulkCreateTransactionsOutput struct {
	CreatedCount    int
	ContactsCreated int
	Transactions    []*entity.Transaction
}

// BulkCreateTransactionsUseCase handles bulk transaction creation.
type BulkCreateTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	resolveContact  *contact.ResolveContactUseCase
}

// NewBulkCreateTransactionsUseCase creates a new BulkCreateTransactionsUseCase instance.
func NewBulkCreateTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	resolveContact *contact.ResolveContactUseCase,
) *BulkCreateTransactionsUseCase {
	return &BulkCreateTransactionsUseCase{
		transactionRepo: transactionRepo,
		resolveContact:  resolveContact,
	}
}

// Execute validates every item up front, resolves contact names, then
// persists the whole batch through one repository call so the inserts
// and the aggregate recalculations share a single store transaction.
// A batch with any invalid item writes nothing.
func (uc *BulkCreateTransactionsUseCase) Execute(ctx context.Context, input BulkCreateTransactionsInput) (*BulkCreateTransactionsOutput, error) {
	if len(input.Items) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyBulkInput,
			"bulk input cannot be empty",
			domainerror.ErrEmptyBulkInput,
		)
	}

	for i, item := range input.Items {
		currency := item.Currency
		if currency == "" {
			currency = entity.BaseCurrency
		}
		if err := validateTransactionFields(item.Amount, currency, item.Type, item.Description, item.Notes); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	contactsCreated := 0
	transactions := make([]*entity.Transaction, 0, len(input.Items))
	for _, item := range input.Items {
		currency := item.Currency
		if currency == "" {
			currency = entity.BaseCurrency
		}

		var contactID *uuid.UUID
		if item.ContactName != "" {
			resolved, err := uc.resolveContact.Execute(ctx, contact.ResolveContactInput{Name: item.ContactName})
			if err != nil {
				return nil, err
			}
			contactID = &resolved.Contact.ID
			if resolved.Created {
				contactsCreated++
			}
		}

		date := item.Date
		if date.IsZero() {
			date = time.Now().UTC()
		}

		txn := entity.NewTransaction(
			item.Amount,
			currency,
			item.Type,
			date,
			contactID,
			item.CategoryID,
			item.ProjectID,
			item.Description,
			item.Notes,
		)
		txn.NeedsReview = item.NeedsReview
		txn.Confidence = item.Confidence
		txn.ReviewReason = item.ReviewReason
		txn.PotentialDuplicateIDs = item.PotentialDuplicateIDs
		txn.RawInputID = input.RawInputID

		transactions = append(transactions, txn)
	}

	if err := uc.transactionRepo.BulkCreate(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to bulk create transactions: %w", err)
	}

	return &BulkCreateTransactionsOutput{
		CreatedCount:    len(transactions),
		ContactsCreated: contactsCreated,
		Transactions:    transactions,
	}, nil
}
