// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// recurringRepository implements the adapter.RecurringRepository interface.
type recurringRepository struct {
	db *gorm.DB
}

// NewRecurringRepository creates a new recurring transaction repository instance.
func NewRecurringRepository(db *gorm.DB) adapter.RecurringRepository {
	return &recurringRepository{
		db: db,
	}
}

// FindAll retrieves recurring transactions matching the filter, ordered
// by next due date.
func (r *recurringRepository) FindAll(ctx context.Context, filter adapter.RecurringFilter) ([]*entity.RecurringTransaction, error) {
	query := r.db.WithContext(ctx).Model(&model.RecurringTransactionModel{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}

	var recurringModels []model.RecurringTransactionModel
	result := query.Order("next_due_date ASC").Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toRecurringEntities(recurringModels), nil
}

// FindByID retrieves a recurring transaction by its ID.
func (r *recurringRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringTransaction, error) {
	var recurringModel model.RecurringTransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recurringModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringNotFound
		}
		return nil, result.Error
	}
	return recurringModel.ToEntity(), nil
}

// FindDue retrieves active templates whose next due date has passed.
func (r *recurringRepository) FindDue(ctx context.Context, now time.Time) ([]*entity.RecurringTransaction, error) {
	var recurringModels []model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("next_due_date <= ?", now).
		Order("next_due_date ASC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toRecurringEntities(recurringModels), nil
}

// FindUpcoming retrieves active templates due within the horizon.
// Already-overdue templates are included by design.
func (r *recurringRepository) FindUpcoming(ctx context.Context, now time.Time, horizonDays int) ([]*entity.RecurringTransaction, error) {
	horizon := now.AddDate(0, 0, horizonDays)

	var recurringModels []model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("next_due_date <= ?", horizon).
		Order("next_due_date ASC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toRecurringEntities(recurringModels), nil
}

// Create persists a new template and returns the freshly-read row.
func (r *recurringRepository) Create(ctx context.Context, recurring *entity.RecurringTransaction) (*entity.RecurringTransaction, error) {
	recurringModel := model.RecurringTransactionFromEntity(recurring)
	if err := r.db.WithContext(ctx).Create(recurringModel).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, recurring.ID)
}

// Update persists changes to an existing template and returns the
// freshly-read row.
func (r *recurringRepository) Update(ctx context.Context, recurring *entity.RecurringTransaction) (*entity.RecurringTransaction, error) {
	if _, err := r.FindByID(ctx, recurring.ID); err != nil {
		return nil, err
	}

	recurring.UpdatedAt = time.Now().UTC()
	recurringModel := model.RecurringTransactionFromEntity(recurring)
	result := r.db.WithContext(ctx).Omit("created_at").Save(recurringModel)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.FindByID(ctx, recurring.ID)
}

// Delete removes a template unconditionally.
func (r *recurringRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.RecurringTransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Materialize persists the occurrence transaction, advances the
// template's schedule state, and recalculates contact aggregates, all
// inside one store transaction. This is the only path that advances
// the schedule.
func (r *recurringRepository) Materialize(ctx context.Context, recurring *entity.RecurringTransaction, occurrence *entity.Transaction) (*entity.Transaction, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transactionModel := model.TransactionFromEntity(occurrence)
		if err := tx.Create(transactionModel).Error; err != nil {
			return err
		}

		recurring.UpdatedAt = time.Now().UTC()
		recurringModel := model.RecurringTransactionFromEntity(recurring)
		if err := tx.Omit("created_at").Save(recurringModel).Error; err != nil {
			return err
		}

		if occurrence.ContactID != nil {
			return recalculateContactAggregates(tx, *occurrence.ContactID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var transactionModel model.TransactionModel
	if err := r.db.WithContext(ctx).Where("id = ?", occurrence.ID).First(&transactionModel).Error; err != nil {
		return nil, err
	}
	return transactionModel.ToEntity(), nil
}

func toRecurringEntities(recurringModels []model.RecurringTransactionModel) []*entity.RecurringTransaction {
	recurring := make([]*entity.RecurringTransaction, len(recurringModels))
	for i, rm := range recurringModels {
		recurring[i] = rm.ToEntity()
	}
	return recurring
}
