// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// CreateProjectRequest represents the request body for project creation.
type CreateProjectRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	Type          string  `json:"type" binding:"required,oneof=service product investment other"`
	Status        string  `json:"status,omitempty" binding:"omitempty,oneof=active paused closed"`
	Description   string  `json:"description,omitempty"`
	Color         string  `json:"color,omitempty"`
	MonthlyBudget *string `json:"monthlyBudget,omitempty"`
	Currency      string  `json:"currency,omitempty" binding:"omitempty,oneof=INR USD"`
}

// UpdateProjectRequest represents the request body for project update.
type UpdateProjectRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type          *string `json:"type,omitempty" binding:"omitempty,oneof=service product investment other"`
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=active paused closed"`
	Description   *string `json:"description,omitempty"`
	Color         *string `json:"color,omitempty"`
	MonthlyBudget *string `json:"monthlyBudget,omitempty"`
	ClearBudget   bool    `json:"clearBudget,omitempty"`
}

// ProjectResponse represents a single project in API responses.
type ProjectResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	Description   string    `json:"description,omitempty"`
	Color         string    `json:"color"`
	MonthlyBudget *string   `json:"monthlyBudget,omitempty"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProjectListResponse represents the response for listing projects.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToProjectResponse converts a domain Project entity to a ProjectResponse DTO.
func ToProjectResponse(project *entity.Project) ProjectResponse {
	response := ProjectResponse{
		ID:          project.ID.String(),
		Name:        project.Name,
		Type:        string(project.Type),
		Status:      string(project.Status),
		Description: project.Description,
		Color:       project.Color,
		Currency:    string(project.Currency),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
	if project.MonthlyBudget != nil {
		budget := project.MonthlyBudget.String()
		response.MonthlyBudget = &budget
	}
	return response
}

// ToProjectListResponse converts domain projects to a ProjectListResponse.
func ToProjectListResponse(projects []*entity.Project) ProjectListResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = ToProjectResponse(project)
	}
	return ProjectListResponse{Projects: responses}
}
