// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Allocations and potential duplicate IDs are stored as JSON text
// columns; the encoding is part of the import/export contract.
type TransactionModel struct {
	ID                    uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Amount                decimal.Decimal     `gorm:"type:decimal(15,2);not null"`
	Currency              string              `gorm:"type:varchar(3);not null"`
	AmountInBaseCurrency  decimal.Decimal     `gorm:"type:decimal(15,2);not null"`
	Type                  string              `gorm:"type:varchar(10);not null;index"`
	Date                  time.Time           `gorm:"type:date;not null;index"`
	ContactID             *uuid.UUID          `gorm:"type:uuid;index"`
	CategoryID            *uuid.UUID          `gorm:"type:uuid;index"`
	ProjectID             *uuid.UUID          `gorm:"type:uuid;index"`
	Allocations           []entity.Allocation `gorm:"serializer:json"`
	Description           string              `gorm:"type:varchar(255)"`
	Notes                 string              `gorm:"type:text"`
	RawInputID            *uuid.UUID          `gorm:"type:uuid"`
	IsRecurring           bool                `gorm:"not null;default:false"`
	RecurringGroupID      *uuid.UUID          `gorm:"type:uuid;index"`
	NeedsReview           bool                `gorm:"not null;default:false"`
	Confidence            *float64            `gorm:"type:real"`
	ReviewReason          *string             `gorm:"type:varchar(30)"`
	PotentialDuplicateIDs []uuid.UUID         `gorm:"serializer:json"`
	CreatedAt             time.Time           `gorm:"not null;index"`
	UpdatedAt             time.Time           `gorm:"not null"`

	Contact  *ContactModel  `gorm:"foreignKey:ContactID;references:ID;constraint:OnDelete:SET NULL"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Project  *ProjectModel  `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var reviewReason *entity.ReviewReason
	if m.ReviewReason != nil {
		reason := entity.ReviewReason(*m.ReviewReason)
		reviewReason = &reason
	}

	return &entity.Transaction{
		ID:                    m.ID,
		Amount:                m.Amount,
		Currency:              entity.Currency(m.Currency),
		AmountInBaseCurrency:  m.AmountInBaseCurrency,
		Type:                  entity.TransactionType(m.Type),
		Date:                  m.Date,
		ContactID:             m.ContactID,
		CategoryID:            m.CategoryID,
		ProjectID:             m.ProjectID,
		Allocations:           m.Allocations,
		Description:           m.Description,
		Notes:                 m.Notes,
		RawInputID:            m.RawInputID,
		IsRecurring:           m.IsRecurring,
		RecurringGroupID:      m.RecurringGroupID,
		NeedsReview:           m.NeedsReview,
		Confidence:            m.Confidence,
		ReviewReason:          reviewReason,
		PotentialDuplicateIDs: m.PotentialDuplicateIDs,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// ToEntityWithRefs converts a TransactionModel with preloaded
// references to a TransactionWithRefs entity.
func (m *TransactionModel) ToEntityWithRefs() *entity.TransactionWithRefs {
	result := &entity.TransactionWithRefs{
		Transaction: m.ToEntity(),
	}

	if m.Contact != nil {
		result.ContactName = m.Contact.Name
	}
	if m.Category != nil {
		result.CategoryName = m.Category.Name
	}
	if m.Project != nil {
		result.ProjectName = m.Project.Name
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var reviewReason *string
	if transaction.ReviewReason != nil {
		reason := string(*transaction.ReviewReason)
		reviewReason = &reason
	}

	return &TransactionModel{
		ID:                    transaction.ID,
		Amount:                transaction.Amount,
		Currency:              string(transaction.Currency),
		AmountInBaseCurrency:  transaction.AmountInBaseCurrency,
		Type:                  string(transaction.Type),
		Date:                  transaction.Date,
		ContactID:             transaction.ContactID,
		CategoryID:            transaction.CategoryID,
		ProjectID:             transaction.ProjectID,
		Allocations:           transaction.Allocations,
		Description:           transaction.Description,
		Notes:                 transaction.Notes,
		RawInputID:            transaction.RawInputID,
		IsRecurring:           transaction.IsRecurring,
		RecurringGroupID:      transaction.RecurringGroupID,
		NeedsReview:           transaction.NeedsReview,
		Confidence:            transaction.Confidence,
		ReviewReason:          reviewReason,
		PotentialDuplicateIDs: transaction.PotentialDuplicateIDs,
		CreatedAt:             transaction.CreatedAt,
		UpdatedAt:             transaction.UpdatedAt,
	}
}
