// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ProjectModel represents the projects table in the database.
type ProjectModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name          string           `gorm:"type:varchar(100);not null"`
	Type          string           `gorm:"type:varchar(20);not null"`
	Status        string           `gorm:"type:varchar(20);not null;index"`
	Description   string           `gorm:"type:text"`
	Color         string           `gorm:"type:varchar(7);not null"`
	MonthlyBudget *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Currency      string           `gorm:"type:varchar(3);not null"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
}

// TableName returns the table name for the ProjectModel.
func (ProjectModel) TableName() string {
	return "projects"
}

// ToEntity converts a ProjectModel to a domain Project entity.
func (m *ProjectModel) ToEntity() *entity.Project {
	return &entity.Project{
		ID:            m.ID,
		Name:          m.Name,
		Type:          entity.ProjectType(m.Type),
		Status:        entity.ProjectStatus(m.Status),
		Description:   m.Description,
		Color:         m.Color,
		MonthlyBudget: m.MonthlyBudget,
		Currency:      entity.Currency(m.Currency),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ProjectFromEntity creates a ProjectModel from a domain Project entity.
func ProjectFromEntity(project *entity.Project) *ProjectModel {
	return &ProjectModel{
		ID:            project.ID,
		Name:          project.Name,
		Type:          string(project.Type),
		Status:        string(project.Status),
		Description:   project.Description,
		Color:         project.Color,
		MonthlyBudget: project.MonthlyBudget,
		Currency:      string(project.Currency),
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}
