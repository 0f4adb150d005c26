// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil pointer fields are left unchanged. ClearContact, ClearCategory
// and ClearProject detach the respective reference.
type UpdateTransactionInput struct {
	ID            uuid.UUID
	Amount        *decimal.Decimal
	Currency      *entity.Currency
	Type          *entity.TransactionType
	Date          *time.Time
	ContactID     *uuid.UUID
	ClearContact  bool
	CategoryID    *uuid.UUID
	ClearCategory bool
	ProjectID     *uuid.UUID
	ClearProject  bool
	Allocations   *[]entity.Allocation
	Description   *string
	Notes         *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	projectRepo     adapter.ProjectRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	projectRepo adapter.ProjectRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		projectRepo:     projectRepo,
	}
}

// Execute performs the transaction update. When amount or currency
// changes the base currency amount is rederived at the current fixed
// rate. Aggregates for both the old and the new contact are
// recalculated by the repository inside the same store transaction.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Currency != nil {
		transaction.Currency = *input.Currency
	}
	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}

	if err := validateTransactionFields(
		transaction.Amount,
		transaction.Currency,
		transaction.Type,
		valueOrCurrent(input.Description, transaction.Description),
		valueOrCurrent(input.Notes, transaction.Notes),
	); err != nil {
		return nil, err
	}

	if input.ClearContact {
		transaction.ContactID = nil
	} else if input.ContactID != nil {
		transaction.ContactID = input.ContactID
	}

	if input.ClearCategory {
		transaction.CategoryID = nil
	} else if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				fmt.Sprintf("category %s not found", input.CategoryID),
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		transaction.CategoryID = input.CategoryID
	}

	if input.ClearProject {
		transaction.ProjectID = nil
	} else if input.ProjectID != nil {
		if _, err := uc.projectRepo.FindByID(ctx, *input.ProjectID); err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnProjectNotFound,
				fmt.Sprintf("project %s not found", input.ProjectID),
				domainerror.ErrProjectNotFoundForTransaction,
			)
		}
		transaction.ProjectID = input.ProjectID
	}

	if input.Allocations != nil {
		transaction.Allocations = *input.Allocations
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.Notes != nil {
		transaction.Notes = *input.Notes
	}

	if input.Amount != nil || input.Currency != nil {
		transaction.AmountInBaseCurrency = entity.ToBaseCurrency(transaction.Amount, transaction.Currency)
	}

	updated, err := uc.transactionRepo.Update(ctx, transaction)
	if err != nil {
		return nil, err
	}

	return &UpdateTransactionOutput{
		Transaction: updated,
	}, nil
}

func valueOrCurrent(candidate *string, current string) string {
	if candidate != nil {
		return *candidate
	}
	return current
}
