// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ContactModel represents the contacts table in the database.
// Aliases are stored as a JSON text column; the encoding is part of the
// import/export contract and versioned by metadata.schemaVersion.
type ContactModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string          `gorm:"type:varchar(100);not null;index"`
	Aliases           []string        `gorm:"serializer:json"`
	Email             string          `gorm:"type:varchar(255)"`
	Phone             string          `gorm:"type:varchar(30)"`
	Company           string          `gorm:"type:varchar(100)"`
	Website           string          `gorm:"type:varchar(255)"`
	Notes             string          `gorm:"type:text"`
	TotalSpent        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalReceived     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TransactionCount  int             `gorm:"not null;default:0"`
	DefaultCategoryID *uuid.UUID      `gorm:"type:uuid"`
	ProjectID         *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`

	Project         *ProjectModel  `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:SET NULL"`
	DefaultCategory *CategoryModel `gorm:"foreignKey:DefaultCategoryID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the ContactModel.
func (ContactModel) TableName() string {
	return "contacts"
}

// ToEntity converts a ContactModel to a domain Contact entity.
func (m *ContactModel) ToEntity() *entity.Contact {
	return &entity.Contact{
		ID:                m.ID,
		Name:              m.Name,
		Aliases:           m.Aliases,
		Email:             m.Email,
		Phone:             m.Phone,
		Company:           m.Company,
		Website:           m.Website,
		Notes:             m.Notes,
		TotalSpent:        m.TotalSpent,
		TotalReceived:     m.TotalReceived,
		TransactionCount:  m.TransactionCount,
		DefaultCategoryID: m.DefaultCategoryID,
		ProjectID:         m.ProjectID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ContactFromEntity creates a ContactModel from a domain Contact entity.
func ContactFromEntity(contact *entity.Contact) *ContactModel {
	return &ContactModel{
		ID:                contact.ID,
		Name:              contact.Name,
		Aliases:           contact.Aliases,
		Email:             contact.Email,
		Phone:             contact.Phone,
		Company:           contact.Company,
		Website:           contact.Website,
		Notes:             contact.Notes,
		TotalSpent:        contact.TotalSpent,
		TotalReceived:     contact.TotalReceived,
		TransactionCount:  contact.TransactionCount,
		DefaultCategoryID: contact.DefaultCategoryID,
		ProjectID:         contact.ProjectID,
		CreatedAt:         contact.CreatedAt,
		UpdatedAt:         contact.UpdatedAt,
	}
}
