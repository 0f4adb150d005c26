// Package recurring contains recurring transaction use cases.
package recurring

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// CreateRecurringInput represents the input for template creation.
type CreateRecurringInput struct {
	Name        string
	Amount      decimal.Decimal
	Currency    entity.Currency // Optional, defaults to base currency
	Type        entity.TransactionType
	Frequency   entity.RecurrenceFrequency
	ContactID   *uuid.UUID
	CategoryID  *uuid.UUID
	ProjectID   *uuid.UUID
	Description string
	Notes       string
}

// CreateRecurringOutput represents the output of template creation.
type CreateRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// CreateRecurringUseCase handles recurring template creation logic.
type CreateRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewCreateRecurringUseCase creates a new CreateRecurringUseCase instance.
func NewCreateRecurringUseCase(recurringRepo adapter.RecurringRepository) *CreateRecurringUseCase {
	return &CreateRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the template creation. The first due date is one
// frequency step after creation.
func (uc *CreateRecurringUseCase) Execute(ctx context.Context, input CreateRecurringInput) (*CreateRecurringOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNameRequired,
			"recurring transaction name is required",
			domainerror.ErrRecurringNameRequired,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	currency := input.Currency
	if currency == "" {
		currency = entity.BaseCurrency
	}
	if !entity.IsValidCurrency(currency) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCurrency,
			fmt.Sprintf("unsupported currency %q", currency),
			domainerror.ErrInvalidCurrency,
		)
	}

	if !entity.IsValidFrequency(input.Frequency) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be 'weekly', 'monthly', 'quarterly' or 'yearly'",
			domainerror.ErrInvalidFrequency,
		)
	}

	recurring := entity.NewRecurringTransaction(
		name,
		input.Amount,
		currency,
		input.Type,
		input.Frequency,
		input.ContactID,
		input.CategoryID,
		input.ProjectID,
		input.Description,
		input.Notes,
	)
	due := nextDueDate(recurring)
	recurring.NextDueDate = &due

	created, err := uc.recurringRepo.Create(ctx, recurring)
	if err != nil {
		return nil, fmt.Errorf("failed to create recurring transaction: %w", err)
	}

	return &CreateRecurringOutput{
		Recurring: created,
	}, nil
}
