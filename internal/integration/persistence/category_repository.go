// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FindAll retrieves categories matching the filter, ordered by name.
func (r *categoryRepository) FindAll(ctx context.Context, filter adapter.CategoryFilter) ([]*entity.Category, error) {
	query := r.db.WithContext(ctx).Model(&model.CategoryModel{})

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchPattern)
	}

	var categoryModels []model.CategoryModel
	result := query.Order("name ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// Create persists a new category and returns the freshly-read row.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	categoryModel := model.CategoryFromEntity(category)
	if err := r.db.WithContext(ctx).Create(categoryModel).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, category.ID)
}

// Update persists changes to an existing category and returns the
// freshly-read row.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	if _, err := r.FindByID(ctx, category.ID); err != nil {
		return nil, err
	}

	category.UpdatedAt = time.Now().UTC()
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Omit("created_at").Save(categoryModel)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.FindByID(ctx, category.ID)
}

// Delete removes a category after enforcing the zero-reference guard.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := countCategoryReferences(tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domainerror.NewReferentialIntegrityError("category", count)
		}

		result := tx.Delete(&model.CategoryModel{}, "id = ?", id)
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

// CountReferences returns the number of transactions and recurring
// transactions referencing the category.
func (r *categoryRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	return countCategoryReferences(r.db.WithContext(ctx), id)
}

func countCategoryReferences(tx *gorm.DB, categoryID uuid.UUID) (int64, error) {
	var transactionCount int64
	err := tx.Model(&model.TransactionModel{}).
		Where("category_id = ?", categoryID).
		Count(&transactionCount).Error
	if err != nil {
		return 0, err
	}

	var recurringCount int64
	err = tx.Model(&model.RecurringTransactionModel{}).
		Where("category_id = ?", categoryID).
		Count(&recurringCount).Error
	if err != nil {
		return 0, err
	}

	return transactionCount + recurringCount, nil
}
