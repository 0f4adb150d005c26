// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ListProjectsInput represents the input for project listing.
type ListProjectsInput struct {
	Type   *entity.ProjectType
	Status *entity.ProjectStatus
	Search string
}

// ListProjectsOutput represents the output of project listing.
type ListProjectsOutput struct {
	Projects []*entity.Project
}

// ListProjectsUseCase handles project listing logic.
type ListProjectsUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewListProjectsUseCase creates a new ListProjectsUseCase instance.
func NewListProjectsUseCase(projectRepo adapter.ProjectRepository) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project listing.
func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.FindAll(ctx, adapter.ProjectFilter{
		Type:   input.Type,
		Status: input.Status,
		Search: input.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &ListProjectsOutput{
		Projects: projects,
	}, nil
}
