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

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for transaction notes.
	MaxNotesLength = 1000
)

// CreateTransactionInput represents the input for transaction creation.
// ContactName, when set, is resolved to an existing contact by name or
// alias, creating one if absent. ContactID takes precedence.
type CreateTransactionInput struct {
	Amount      decimal.Decimal
	Currency    entity.Currency // Optional, defaults to base currency
	Type        entity.TransactionType
	Date        time.Time
	ContactID   *uuid.UUID
	ContactName string
	CategoryID  *uuid.UUID
	ProjectID   *uuid.UUID
	Allocations []entity.Allocation
	Description string
	Notes       string
	IsRecurring bool
	RawInputID  *uuid.UUID // Links back to the raw text the entry came from
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction    *entity.Transaction
	ContactCreated bool
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	projectRepo     adapter.ProjectRepository
	resolveContact  *contact.ResolveContactUseCase
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	projectRepo adapter.ProjectRepository,
	resolveContact *contact.ResolveContactUseCase,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		projectRepo:     projectRepo,
		resolveContact:  resolveContact,
	}
}

// Execute performs the transaction creation. The repository runs the
// row insert and the contact aggregate recalculation inside one store
// transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	currency := input.Currency
	if currency == "" {
		currency = entity.BaseCurrency
	}

	if err := validateTransactionFields(input.Amount, currency, input.Type, input.Description, input.Notes); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				fmt.Sprintf("category %s not found", input.CategoryID),
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
	}
	if input.ProjectID != nil {
		if _, err := uc.projectRepo.FindByID(ctx, *input.ProjectID); err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnProjectNotFound,
				fmt.Sprintf("project %s not found", input.ProjectID),
				domainerror.ErrProjectNotFoundForTransaction,
			)
		}
	}

	contactID := input.ContactID
	contactCreated := false
	if contactID == nil && input.ContactName != "" {
		resolved, err := uc.resolveContact.Execute(ctx, contact.ResolveContactInput{Name: input.ContactName})
		if err != nil {
			return nil, err
		}
		contactID = &resolved.Contact.ID
		contactCreated = resolved.Created
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	txn := entity.NewTransaction(
		input.Amount,
		currency,
		input.Type,
		date,
		contactID,
		input.CategoryID,
		input.ProjectID,
		input.Description,
		input.Notes,
	)
	txn.Allocations = input.Allocations
	txn.IsRecurring = input.IsRecurring
	txn.RawInputID = input.RawInputID

	created, err := uc.transactionRepo.Create(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction:    created,
		ContactCreated: contactCreated,
	}, nil
}

// validateTransactionFields enforces the shared write-path invariants.
func validateTransactionFields(
	amount decimal.Decimal,
	currency entity.Currency,
	transactionType entity.TransactionType,
	description string,
	notes string,
) error {
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !entity.IsValidCurrency(currency) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCurrency,
			fmt.Sprintf("unsupported currency %q", currency),
			domainerror.ErrInvalidCurrency,
		)
	}
	if !isValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	if len(notes) > MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}
	return nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}
