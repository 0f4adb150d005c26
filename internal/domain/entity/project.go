// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectType represents the kind of work a project tracks.
type ProjectType string

const (
	ProjectTypeService    ProjectType = "service"
	ProjectTypeProduct    ProjectType = "product"
	ProjectTypeInvestment ProjectType = "investment"
	ProjectTypeOther      ProjectType = "other"
)

// ProjectStatus represents the lifecycle status of a project.
type ProjectStatus string

const (
	ProjectStatusActive ProjectStatus = "active"
	ProjectStatusPaused ProjectStatus = "paused"
	ProjectStatusClosed ProjectStatus = "closed"
)

// DefaultProjectColor is the default color for projects.
const DefaultProjectColor = "#0EA5E9"

// Project represents a client project or engagement that transactions
// can be attributed to.
type Project struct {
	ID            uuid.UUID
	Name          string
	Type          ProjectType
	Status        ProjectStatus
	Description   string
	Color         string
	MonthlyBudget *decimal.Decimal
	Currency      Currency
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewProject creates a new Project entity.
func NewProject(
	name string,
	projectType ProjectType,
	status ProjectStatus,
	description string,
	color string,
	monthlyBudget *decimal.Decimal,
	currency Currency,
) *Project {
	now := time.Now().UTC()

	return &Project{
		ID:            uuid.New(),
		Name:          name,
		Type:          projectType,
		Status:        status,
		Description:   description,
		Color:         color,
		MonthlyBudget: monthlyBudget,
		Currency:      currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
