// Package recurring contains recurring transaction use cases.
package recurring

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

// MaterializeRecurringInput represents the input for materialization.
// EffectiveDate overrides the occurrence date and schedule anchor;
// OverrideAmount overrides the template amount for this occurrence only.
type MaterializeRecurringInput struct {
	ID             uuid.UUID
	EffectiveDate  *time.Time
	OverrideAmount *decimal.Decimal
}

// MaterializeRecurringOutput represents the output of materialization.
type MaterializeRecurringOutput struct {
	Transaction *entity.Transaction
	Recurring   *entity.RecurringTransaction
}

// MaterializeRecurringUseCase turns a due template into a concrete
// transaction and advances the schedule.
type MaterializeRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewMaterializeRecurringUseCase creates a new MaterializeRecurringUseCase instance.
func NewMaterializeRecurringUseCase(recurringRepo adapter.RecurringRepository) *MaterializeRecurringUseCase {
	return &MaterializeRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute stamps an occurrence transaction from the template, marks it
// as recurring-born, advances lastCreatedAt/nextDueDate, and hands the
// pair to the repository which persists both plus the contact
// aggregate recalculation in one store transaction. Inactive templates
// are rejected.
func (uc *MaterializeRecurringUseCase) Execute(ctx context.Context, input MaterializeRecurringInput) (*MaterializeRecurringOutput, error) {
	recurring, err := uc.recurringRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if !recurring.IsActive {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringInactive,
			"recurring transaction is not active",
			domainerror.ErrRecurringInactive,
		)
	}

	now := time.Now().UTC()
	effectiveDate := now
	if input.EffectiveDate != nil {
		effectiveDate = *input.EffectiveDate
	}

	amount := recurring.Amount
	if input.OverrideAmount != nil {
		if !input.OverrideAmount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"transaction amount must be positive",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		amount = *input.OverrideAmount
	}

	occurrence := entity.NewTransaction(
		amount,
		recurring.Currency,
		recurring.Type,
		effectiveDate,
		recurring.ContactID,
		recurring.CategoryID,
		recurring.ProjectID,
		recurring.Description,
		recurring.Notes,
	)
	occurrence.IsRecurring = true
	occurrence.RecurringGroupID = &recurring.ID

	recurring.LastCreatedAt = &effectiveDate
	due := nextDueDate(recurring)
	recurring.NextDueDate = &due

	transaction, err := uc.recurringRepo.Materialize(ctx, recurring, occurrence)
	if err != nil {
		return nil, fmt.Errorf("failed to materialize recurring transaction: %w", err)
	}

	return &MaterializeRecurringOutput{
		Transaction: transaction,
		Recurring:   recurring,
	}, nil
}
