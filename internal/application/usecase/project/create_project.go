// Package project contains project-related use cases.
package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

const (
	// MaxProjectNameLength is the maximum allowed length for project names.
	MaxProjectNameLength = 100
)

// CreateProjectInput represents the input for project creation.
type CreateProjectInput struct {
	Name          string
	Type          entity.ProjectType
	Status        entity.ProjectStatus // Optional, defaults to active
	Description   string
	Color         string // Optional, defaults to DefaultProjectColor
	MonthlyBudget *decimal.Decimal
	Currency      entity.Currency // Optional, defaults to base currency
}

// CreateProjectOutput represents the output of project creation.
type CreateProjectOutput struct {
	Project *entity.Project
}

// CreateProjectUseCase handles project creation logic.
type CreateProjectUseCase struct {
	projectRepo adapter.ProjectRepository
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase instance.
func NewCreateProjectUseCase(projectRepo adapter.ProjectRepository) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
	}
}

// Execute performs the project creation.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNameRequired,
			"project name is required",
			domainerror.ErrProjectNameRequired,
		)
	}
	if len(name) > MaxProjectNameLength {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeProjectNameRequired,
			fmt.Sprintf("project name must not exceed %d characters", MaxProjectNameLength),
			domainerror.ErrProjectNameRequired,
		)
	}

	if !isValidProjectType(input.Type) {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeInvalidProjectType,
			"project type must be 'service', 'product', 'investment' or 'other'",
			domainerror.ErrInvalidProjectType,
		)
	}

	status := input.Status
	if status == "" {
		status = entity.ProjectStatusActive
	}
	if !isValidProjectStatus(status) {
		return nil, domainerror.NewProjectError(
			domainerror.ErrCodeInvalidProjectStatus,
			"project status must be 'active', 'paused' or 'closed'",
			domainerror.ErrInvalidProjectStatus,
		)
	}

	color := input.Color
	if color == "" {
		color = entity.DefaultProjectColor
	}
	currency := input.Currency
	if currency == "" {
		currency = entity.BaseCurrency
	}
	if !entity.IsValidCurrency(currency) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCurrency,
			fmt.Sprintf("unsupported currency %q", currency),
			domainerror.ErrInvalidCurrency,
		)
	}

	project := entity.NewProject(
		name,
		input.Type,
		status,
		input.Description,
		color,
		input.MonthlyBudget,
		currency,
	)

	created, err := uc.projectRepo.Create(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &CreateProjectOutput{
		Project: created,
	}, nil
}

// isValidProjectType validates the project type.
func isValidProjectType(projectType entity.ProjectType) bool {
	switch projectType {
	case entity.ProjectTypeService, entity.ProjectTypeProduct, entity.ProjectTypeInvestment, entity.ProjectTypeOther:
		return true
	}
	return false
}

// isValidProjectStatus validates the project status.
func isValidProjectStatus(status entity.ProjectStatus) bool {
	switch status {
	case entity.ProjectStatusActive, entity.ProjectStatusPaused, entity.ProjectStatusClosed:
		return true
	}
	return false
}
