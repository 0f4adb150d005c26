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

// projectRepository implements the adapter.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance.
func NewProjectRepository(db *gorm.DB) adapter.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// FindAll retrieves projects matching the filter, ordered by name.
func (r *projectRepository) FindAll(ctx context.Context, filter adapter.ProjectFilter) ([]*entity.Project, error) {
	query := r.db.WithContext(ctx).Model(&model.ProjectModel{})

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchPattern)
	}

	var projectModels []model.ProjectModel
	result := query.Order("name ASC").Find(&projectModels)
	if result.Error != nil {
		return nil, result.Error
	}

	projects := make([]*entity.Project, len(projectModels))
	for i, pm := range projectModels {
		projects[i] = pm.ToEntity()
	}
	return projects, nil
}

// FindByID retrieves a project by its ID.
func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectModel model.ProjectModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&projectModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProjectNotFound
		}
		return nil, result.Error
	}
	return projectModel.ToEntity(), nil
}

// Create persists a new project and returns the freshly-read row.
func (r *projectRepository) Create(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	projectModel := model.ProjectFromEntity(project)
	if err := r.db.WithContext(ctx).Create(projectModel).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, project.ID)
}

// Update persists changes to an existing project and returns the
// freshly-read row.
func (r *projectRepository) Update(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	if _, err := r.FindByID(ctx, project.ID); err != nil {
		return nil, err
	}

	project.UpdatedAt = time.Now().UTC()
	projectModel := model.ProjectFromEntity(project)
	result := r.db.WithContext(ctx).Omit("created_at").Save(projectModel)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.FindByID(ctx, project.ID)
}

// Delete removes a project after enforcing the zero-reference guard.
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := countProjectReferences(tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domainerror.NewReferentialIntegrityError("project", count)
		}

		result := tx.Delete(&model.ProjectModel{}, "id = ?", id)
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
// transactions referencing the project.
func (r *projectRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	return countProjectReferences(r.db.WithContext(ctx), id)
}

func countProjectReferences(tx *gorm.DB, projectID uuid.UUID) (int64, error) {
	var transactionCount int64
	err := tx.Model(&model.TransactionModel{}).
		Where("project_id = ?", projectID).
		Count(&transactionCount).Error
	if err != nil {
		return 0, err
	}

	var recurringCount int64
	err = tx.Model(&model.RecurringTransactionModel{}).
		Where("project_id = ?", projectID).
		Count(&recurringCount).Error
	if err != nil {
		return 0, err
	}

	return transactionCount + recurringCount, nil
}
