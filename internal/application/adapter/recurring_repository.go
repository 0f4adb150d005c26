// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// RecurringFilter defines filter options for listing recurring transactions.
type RecurringFilter struct {
	IsActive *bool
	Type     *entity.TransactionType
}

// RecurringRepository defines the interface for recurring transaction
// persistence operations.
type RecurringRepository interface {
	// FindAll retrieves recurring transactions matching the filter,
	// ordered by next due date.
	FindAll(ctx context.Context, filter RecurringFilter) ([]*entity.RecurringTransaction, error)

	// FindByID retrieves a recurring transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringTransaction, error)

	// FindDue retrieves active templates with nextDueDate <= now.
	FindDue(ctx context.Context, now time.Time) ([]*entity.RecurringTransaction, error)

	// FindUpcoming retrieves active templates with nextDueDate <= now+horizon.
	// Already-overdue templates are included.
	FindUpcoming(ctx context.Context, now time.Time, horizonDays int) ([]*entity.RecurringTransaction, error)

	// Create persists a new template and returns the freshly-read row.
	Create(ctx context.Context, recurring *entity.RecurringTransaction) (*entity.RecurringTransaction, error)

	// Update persists changes to an existing template and returns the
	// freshly-read row. Returns ErrRecurringNotFound for a missing ID.
	Update(ctx context.Context, recurring *entity.RecurringTransaction) (*entity.RecurringTransaction, error)

	// Delete removes a template unconditionally. Returns false without
	// error when the ID does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Materialize persists the occurrence transaction, advances the
	// template schedule state, and recalculates contact aggregates, all
	// inside one store transaction. The caller stamps the transaction
	// and the template's LastCreatedAt/NextDueDate beforehand.
	Materialize(ctx context.Context, recurring *entity.RecurringTransaction, occurrence *entity.Transaction) (*entity.Transaction, error)
}
