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

// contactRepository implements the adapter.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository instance.
func NewContactRepository(db *gorm.DB) adapter.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// FindAll retrieves contacts matching the filter, ordered by name.
func (r *contactRepository) FindAll(ctx context.Context, filter adapter.ContactFilter) ([]*entity.Contact, error) {
	query := r.db.WithContext(ctx).Model(&model.ContactModel{})

	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(company) LIKE ?", searchPattern, searchPattern)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", filter.ProjectID)
	}

	var contactModels []model.ContactModel
	result := query.Order("name ASC").Find(&contactModels)
	if result.Error != nil {
		return nil, result.Error
	}

	contacts := make([]*entity.Contact, len(contactModels))
	for i, cm := range contactModels {
		contacts[i] = cm.ToEntity()
	}
	return contacts, nil
}

// FindByID retrieves a contact by its ID.
func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contactModel model.ContactModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&contactModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrContactNotFound
		}
		return nil, result.Error
	}
	return contactModel.ToEntity(), nil
}

// FindByNameOrAlias retrieves the first contact whose name or alias
// matches the given name case-insensitively. Name matches are resolved
// in SQL; alias matches require scanning the JSON-encoded alias lists
// in memory, which is acceptable for a single-user local dataset.
func (r *contactRepository) FindByNameOrAlias(ctx context.Context, name string) (*entity.Contact, error) {
	trimmed := strings.TrimSpace(name)

	var contactModel model.ContactModel
	result := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(trimmed)).
		First(&contactModel)
	if result.Error == nil {
		return contactModel.ToEntity(), nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	var contactModels []model.ContactModel
	if err := r.db.WithContext(ctx).Find(&contactModels).Error; err != nil {
		return nil, err
	}
	for _, cm := range contactModels {
		contact := cm.ToEntity()
		if contact.MatchesName(trimmed) {
			return contact, nil
		}
	}

	return nil, domainerror.ErrContactNotFound
}

// Create persists a new contact and returns the freshly-read row.
func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	contactModel := model.ContactFromEntity(contact)
	if err := r.db.WithContext(ctx).Create(contactModel).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, contact.ID)
}

// Update persists changes to an existing contact. The cached aggregate
// columns are omitted; they are owned by RecalculateAggregates.
func (r *contactRepository) Update(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	if _, err := r.FindByID(ctx, contact.ID); err != nil {
		return nil, err
	}

	contact.UpdatedAt = time.Now().UTC()
	contactModel := model.ContactFromEntity(contact)
	result := r.db.WithContext(ctx).
		Omit("total_spent", "total_received", "transaction_count", "created_at").
		Save(contactModel)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.FindByID(ctx, contact.ID)
}

// Delete removes a contact after enforcing the zero-reference guard.
func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := countContactReferences(tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domainerror.NewReferentialIntegrityError("contact", count)
		}

		result := tx.Delete(&model.ContactModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// RecalculateAggregates re-derives the contact's cached totals from a
// full scan over its transactions and writes them back unconditionally.
func (r *contactRepository) RecalculateAggregates(ctx context.Context, contactID uuid.UUID) error {
	return recalculateContactAggregates(r.db.WithContext(ctx), contactID)
}

// recalculateContactAggregates recomputes totalSpent, totalReceived and
// transactionCount from the transactions table inside the given
// transaction handle. Recomputing from source rather than incrementing
// keeps the cache self-healing: any later recalculation erases drift
// from a missed update path.
func recalculateContactAggregates(tx *gorm.DB, contactID uuid.UUID) error {
	var spent struct {
		Total decimal.Decimal
	}
	err := tx.Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount_in_base_currency), 0) as total").
		Where("contact_id = ?", contactID).
		Where("type = ?", string(entity.TransactionTypeExpense)).
		Scan(&spent).Error
	if err != nil {
		return err
	}

	var received struct {
		Total decimal.Decimal
	}
	err = tx.Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount_in_base_currency), 0) as total").
		Where("contact_id = ?", contactID).
		Where("type = ?", string(entity.TransactionTypeIncome)).
		Scan(&received).Error
	if err != nil {
		return err
	}

	var count int64
	err = tx.Model(&model.TransactionModel{}).
		Where("contact_id = ?", contactID).
		Count(&count).Error
	if err != nil {
		return err
	}

	return tx.Model(&model.ContactModel{}).
		Where("id = ?", contactID).
		Updates(map[string]interface{}{
			"total_spent":       spent.Total,
			"total_received":    received.Total,
			"transaction_count": count,
			"updated_at":        time.Now().UTC(),
		}).Error
}

// countContactReferences counts transactions and recurring transactions
// referencing the contact.
func countContactReferences(tx *gorm.DB, contactID uuid.UUID) (int64, error) {
	var transactionCount int64
	err := tx.Model(&model.TransactionModel{}).
		Where("contact_id = ?", contactID).
		Count(&transactionCount).Error
	if err != nil {
		return 0, err
	}

	var recurringCount int64
	err = tx.Model(&model.RecurringTransactionModel{}).
		Where("contact_id = ?", contactID).
		Count(&recurringCount).Error
	if err != nil {
		return 0, err
	}

	return transactionCount + recurringCount, nil
}
