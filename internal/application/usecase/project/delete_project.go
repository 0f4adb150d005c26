// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
)

// DeleteProjectInput represents the input for project deletion.
type DeleteProjectInput struct {
	ID uuid.UUID
}

// DeleteProjectOutput represents the output of project deletion.
type DeleteProjectOutput struct {
	Deleted bool
}

// DeleteProjectUseCase handles project deletion logic.
type DeleteProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewDeleteProjectUseCase creates a new DeleteProjectUseCase instance.
func NewDeleteProjectUseCase(projectRepo adapter.ProjectRepository) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project deletion. The referential guard in the
// repository blocks deletion while transactions or recurring templates
// reference the project.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) (*DeleteProjectOutput, error) {
	if _, err := uc.projectRepo.FindByID(ctx, input.ID); err != nil {
		return nil, err
	}

	deleted, err := uc.projectRepo.Delete(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	return &DeleteProjectOutput{
		Deleted: deleted,
	}, nil
}
