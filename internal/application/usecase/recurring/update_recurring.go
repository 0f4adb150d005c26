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

// UpdateRecurringInput represents the input for template update.
// Nil pointer fields are left unchanged.
type UpdateRecurringInput struct {
	ID          uuid.UUID
	Name        *string
	Amount      *decimal.Decimal
	Currency    *entity.Currency
	Type        *entity.TransactionType
	Frequency   *entity.RecurrenceFrequency
	ContactID   *uuid.UUID
	CategoryID  *uuid.UUID
	ProjectID   *uuid.UUID
	Description *string
	Notes       *string
	IsActive    *bool
}

// UpdateRecurringOutput represents the output of template update.
type UpdateRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// UpdateRecurringUseCase handles recurring template update logic.
type UpdateRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewUpdateRecurringUseCase creates a new UpdateRecurringUseCase instance.
func NewUpdateRecurringUseCase(recurringRepo adapter.RecurringRepository) *UpdateRecurringUseCase {
	return &UpdateRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the template update. A frequency change recomputes
// the next due date from the existing schedule anchor, not from the
// time of the edit.
func (uc *UpdateRecurringUseCase) Execute(ctx context.Context, input UpdateRecurringInput) (*UpdateRecurringOutput, error) {
	recurring, err := uc.recurringRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringNameRequired,
				"recurring transaction name is required",
				domainerror.ErrRecurringNameRequired,
			)
		}
		recurring.Name = name
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"transaction amount must be positive",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		recurring.Amount = *input.Amount
	}
	if input.Currency != nil {
		if !entity.IsValidCurrency(*input.Currency) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidCurrency,
				fmt.Sprintf("unsupported currency %q", *input.Currency),
				domainerror.ErrInvalidCurrency,
			)
		}
		recurring.Currency = *input.Currency
	}
	if input.Type != nil {
		recurring.Type = *input.Type
	}
	if input.Frequency != nil {
		if !entity.IsValidFrequency(*input.Frequency) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeInvalidFrequency,
				"frequency must be 'weekly', 'monthly', 'quarterly' or 'yearly'",
				domainerror.ErrInvalidFrequency,
			)
		}
		recurring.Frequency = *input.Frequency
		due := nextDueDate(recurring)
		recurring.NextDueDate = &due
	}
	if input.ContactID != nil {
		recurring.ContactID = input.ContactID
	}
	if input.CategoryID != nil {
		recurring.CategoryID = input.CategoryID
	}
	if input.ProjectID != nil {
		recurring.ProjectID = input.ProjectID
	}
	if input.Description != nil {
		recurring.Description = *input.Description
	}
	if input.Notes != nil {
		recurring.Notes = *input.Notes
	}
	if input.IsActive != nil {
		recurring.IsActive = *input.IsActive
	}

	updated, err := uc.recurringRepo.Update(ctx, recurring)
	if err != nil {
		return nil, fmt.Errorf("failed to update recurring transaction: %w", err)
	}

	return &UpdateRecurringOutput{
		Recurring: updated,
	}, nil
}
