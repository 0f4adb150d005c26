// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// RecurringTransactionModel represents the recurring_transactions table.
type RecurringTransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null"`
	Type          string          `gorm:"type:varchar(10);not null"`
	Frequency     string          `gorm:"type:varchar(10);not null"`
	ContactID     *uuid.UUID      `gorm:"type:uuid;index"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid"`
	ProjectID     *uuid.UUID      `gorm:"type:uuid"`
	Description   string          `gorm:"type:varchar(255)"`
	Notes         string          `gorm:"type:text"`
	IsActive      bool            `gorm:"not null;default:true;index"`
	LastCreatedAt *time.Time      `gorm:"type:timestamp"`
	NextDueDate   *time.Time      `gorm:"type:timestamp;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Contact  *ContactModel  `gorm:"foreignKey:ContactID;references:ID;constraint:OnDelete:SET NULL"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Project  *ProjectModel  `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the RecurringTransactionModel.
func (RecurringTransactionModel) TableName() string {
	return "recurring_transactions"
}

// ToEntity converts a RecurringTransactionModel to a domain entity.
func (m *RecurringTransactionModel) ToEntity() *entity.RecurringTransaction {
	return &entity.RecurringTransaction{
		ID:            m.ID,
		Name:          m.Name,
		Amount:        m.Amount,
		Currency:      entity.Currency(m.Currency),
		Type:          entity.TransactionType(m.Type),
		Frequency:     entity.RecurrenceFrequency(m.Frequency),
		ContactID:     m.ContactID,
		CategoryID:    m.CategoryID,
		ProjectID:     m.ProjectID,
		Description:   m.Description,
		Notes:         m.Notes,
		IsActive:      m.IsActive,
		LastCreatedAt: m.LastCreatedAt,
		NextDueDate:   m.NextDueDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// RecurringTransactionFromEntity creates a RecurringTransactionModel
// from a domain entity.
func RecurringTransactionFromEntity(recurring *entity.RecurringTransaction) *RecurringTransactionModel {
	return &RecurringTransactionModel{
		ID:            recurring.ID,
		Name:          recurring.Name,
		Amount:        recurring.Amount,
		Currency:      string(recurring.Currency),
		Type:          string(recurring.Type),
		Frequency:     string(recurring.Frequency),
		ContactID:     recurring.ContactID,
		CategoryID:    recurring.CategoryID,
		ProjectID:     recurring.ProjectID,
		Description:   recurring.Description,
		Notes:         recurring.Notes,
		IsActive:      recurring.IsActive,
		LastCreatedAt: recurring.LastCreatedAt,
		NextDueDate:   recurring.NextDueDate,
		CreatedAt:     recurring.CreatedAt,
		UpdatedAt:     recurring.UpdatedAt,
	}
}
