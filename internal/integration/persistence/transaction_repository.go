// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create persists a new transaction and recalculates the referenced
// contact's aggregates in the same store transaction.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transactionModel := model.TransactionFromEntity(transaction)
		if err := tx.Create(transactionModel).Error; err != nil {
			return err
		}
		if transaction.ContactID != nil {
			return recalculateContactAggregates(tx, *transaction.ContactID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, transaction.ID)
}

// BulkCreate persists a batch of transactions in one store transaction
// and recalculates aggregates once per distinct contact.
func (r *transactionRepository) BulkCreate(ctx context.Context, transactions []*entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		touched := make(map[uuid.UUID]bool)
		for _, transaction := range transactions {
			transactionModel := model.TransactionFromEntity(transaction)
			if err := tx.Create(transactionModel).Error; err != nil {
				return err
			}
			if transaction.ContactID != nil {
				touched[*transaction.ContactID] = true
			}
		}
		for contactID := range touched {
			if err := recalculateContactAggregates(tx, contactID); err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByIDWithRefs retrieves a transaction with referenced display names.
func (r *transactionRepository) FindByIDWithRefs(ctx context.Context, id uuid.UUID) (*entity.TransactionWithRefs, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Contact").
		Preload("Category").
		Preload("Project").
		Where("id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntityWithRefs(), nil
}

// FindByFilter retrieves one page of transactions plus totals over the
// whole filtered set. Ordering is (date DESC, created_at DESC, id DESC)
// so pagination stays deterministic under duplicate dates.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, page adapter.TransactionPage) (*adapter.TransactionListResult, error) {
	query := applyTransactionFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter)

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	totalIncome, err := sumByType(query.Session(&gorm.Session{}), entity.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := sumByType(query.Session(&gorm.Session{}), entity.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}

	var transactionModels []model.TransactionModel
	result := query.
		Preload("Contact").
		Preload("Category").
		Preload("Project").
		Order("date DESC, created_at DESC, id DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithRefs, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithRefs()
	}

	return &adapter.TransactionListResult{
		Transactions:  transactions,
		Total:         total,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		HasMore:       int64(page.Skip+len(transactions)) < total,
	}, nil
}

// Update persists changes to an existing transaction and recalculates
// aggregates for every distinct contact touched, old and new.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.TransactionModel
		result := tx.Where("id = ?", transaction.ID).First(&existing)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrTransactionNotFound
			}
			return result.Error
		}

		transaction.UpdatedAt = time.Now().UTC()
		transactionModel := model.TransactionFromEntity(transaction)
		if err := tx.Omit("created_at").Save(transactionModel).Error; err != nil {
			return err
		}

		for _, contactID := range distinctContacts(existing.ContactID, transaction.ContactID) {
			if err := recalculateContactAggregates(tx, contactID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, transaction.ID)
}

// Delete removes a transaction unconditionally and recalculates the
// referenced contact's aggregates.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.TransactionModel
		result := tx.Where("id = ?", id).First(&existing)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil
			}
			return result.Error
		}

		if err := tx.Delete(&model.TransactionModel{}, "id = ?", id).Error; err != nil {
			return err
		}
		deleted = true

		if existing.ContactID != nil {
			return recalculateContactAggregates(tx, *existing.ContactID)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// applyTransactionFilter translates the filter into conjunctive WHERE
// clauses. Absent fields impose no constraint.
func applyTransactionFilter(query *gorm.DB, filter adapter.TransactionFilter) *gorm.DB {
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.ContactID != nil {
		query = query.Where("contact_id = ?", filter.ContactID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.MinAmount != nil {
		query = query.Where("amount >= ?", filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount <= ?", filter.MaxAmount)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(description) LIKE ? OR LOWER(notes) LIKE ?", searchPattern, searchPattern)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}
	return query
}

func sumByType(query *gorm.DB, transactionType entity.TransactionType) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := query.
		Where("type = ?", string(transactionType)).
		Select("COALESCE(SUM(amount_in_base_currency), 0) as total").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// distinctContacts returns the distinct non-nil contact IDs among the
// given pointers, preserving order.
func distinctContacts(ids ...*uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var out []uuid.UUID
	for _, id := range ids {
		if id == nil || seen[*id] {
			continue
		}
		seen[*id] = true
		out = append(out, *id)
	}
	return out
}
