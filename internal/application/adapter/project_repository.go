// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ProjectFilter defines filter options for listing projects.
type ProjectFilter struct {
	Type   *entity.ProjectType
	Status *entity.ProjectStatus
	Search string
}

// ProjectRepository defines the interface for project persistence operations.
type ProjectRepository interface {
	// FindAll retrieves projects matching the filter, ordered by name.
	FindAll(ctx context.Context, filter ProjectFilter) ([]*entity.Project, error)

	// FindByID retrieves a project by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// Create persists a new project and returns the freshly-read row.
	Create(ctx context.Context, project *entity.Project) (*entity.Project, error)

	// Update persists changes to an existing project and returns the
	// freshly-read row. Returns ErrProjectNotFound for a missing ID.
	Update(ctx context.Context, project *entity.Project) (*entity.Project, error)

	// Delete removes a project. It enforces the zero-reference guard
	// and fails with a ReferentialIntegrityError while any transaction
	// or recurring transaction references the project. Returns false
	// without error when the ID does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// CountReferences returns the number of transactions and recurring
	// transactions referencing the project.
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
}
