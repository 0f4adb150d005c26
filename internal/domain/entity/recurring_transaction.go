// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurrenceFrequency represents how often a recurring transaction repeats.
type RecurrenceFrequency string

const (
	FrequencyWeekly    RecurrenceFrequency = "weekly"
	FrequencyMonthly   RecurrenceFrequency = "monthly"
	FrequencyQuarterly RecurrenceFrequency = "quarterly"
	FrequencyYearly    RecurrenceFrequency = "yearly"
)

// IsValidFrequency reports whether the given frequency is supported.
func IsValidFrequency(f RecurrenceFrequency) bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringTransaction is a template that concrete transactions are
// materialized from on a schedule.
//
// Invariant: NextDueDate always equals the frequency advance applied to
// LastCreatedAt, or to CreatedAt if no occurrence was ever materialized.
type RecurringTransaction struct {
	ID            uuid.UUID
	Name          string
	Amount        decimal.Decimal
	Currency      Currency
	Type          TransactionType
	Frequency     RecurrenceFrequency
	ContactID     *uuid.UUID
	CategoryID    *uuid.UUID
	ProjectID     *uuid.UUID
	Description   string
	Notes         string
	IsActive      bool
	LastCreatedAt *time.Time
	NextDueDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRecurringTransaction creates a new RecurringTransaction entity.
// NextDueDate is established by the scheduler before persisting.
func NewRecurringTransaction(
	name string,
	amount decimal.Decimal,
	currency Currency,
	transactionType TransactionType,
	frequency RecurrenceFrequency,
	contactID *uuid.UUID,
	categoryID *uuid.UUID,
	projectID *uuid.UUID,
	description string,
	notes string,
) *RecurringTransaction {
	now := time.Now().UTC()

	return &RecurringTransaction{
		ID:          uuid.New(),
		Name:        name,
		Amount:      amount,
		Currency:    currency,
		Type:        transactionType,
		Frequency:   frequency,
		ContactID:   contactID,
		CategoryID:  categoryID,
		ProjectID:   projectID,
		Description: description,
		Notes:       notes,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ScheduleAnchor returns the date the next due date is derived from:
// the last materialization time, or the creation time if the template
// has never produced an occurrence.
func (r *RecurringTransaction) ScheduleAnchor() time.Time {
	if r.LastCreatedAt != nil {
		return *r.LastCreatedAt
	}
	return r.CreatedAt
}
