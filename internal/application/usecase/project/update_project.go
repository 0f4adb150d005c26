// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// UpdateProjectInput represents the input for project update.
// Nil pointer fields are left unchanged.
type UpdateProjectInput struct {
	ID            uuid.UUID
	Name          *string
	Type          *entity.ProjectType
	Status        *entity.ProjectStatus
	Description   *string
	Color         *string
	MonthlyBudget *decimal.Decimal
	ClearBudget   bool
}

// UpdateProjectOutput represents the output of project update.
type UpdateProjectOutput struct {
	Project *entity.Project
}

// UpdateProjectUseCase handles project update logic.
type UpdateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewUpdateProjectUseCase creates a new UpdateProjectUseCase instance.
func NewUpdateProjectUseCase(projectRepo adapter.ProjectRepository) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project update.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	project, err := uc.projectRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeProjectNameRequired,
				"project name is required",
				domainerror.ErrProjectNameRequired,
			)
		}
		project.Name = name
	}
	if input.Type != nil {
		if !isValidProjectType(*input.Type) {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeInvalidProjectType,
				"project type must be 'service', 'product', 'investment' or 'other'",
				domainerror.ErrInvalidProjectType,
			)
		}
		project.Type = *input.Type
	}
	if input.Status != nil {
		if !isValidProjectStatus(*input.Status) {
			return nil, domainerror.NewProjectError(
				domainerror.ErrCodeInvalidProjectStatus,
				"project status must be 'active', 'paused' or 'closed'",
				domainerror.ErrInvalidProjectStatus,
			)
		}
		project.Status = *input.Status
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Color != nil {
		project.Color = *input.Color
	}
	if input.ClearBudget {
		project.MonthlyBudget = nil
	} else if input.MonthlyBudget != nil {
		project.MonthlyBudget = input.MonthlyBudget
	}

	updated, err := uc.projectRepo.Update(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return &UpdateProjectOutput{
		Project: updated,
	}, nil
}
