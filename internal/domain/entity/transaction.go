// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// ReviewReason explains why a transaction was flagged for review.
type ReviewReason string

const (
	ReviewReasonLowConfidence      ReviewReason = "low_confidence"
	ReviewReasonPotentialDuplicate ReviewReason = "potential_duplicate"
	ReviewReasonIncomplete         ReviewReason = "incomplete"
)

// Allocation splits a transaction amount across targets by share.
type Allocation struct {
	TargetID uuid.UUID       `json:"targetId"`
	Share    decimal.Decimal `json:"share"`
}

// Transaction represents a single financial transaction in the ledger.
//
// AmountInBaseCurrency is computed at write time from Amount/Currency
// with the fixed conversion rate and is never recomputed retroactively.
type Transaction struct {
	ID                    uuid.UUID
	Amount                decimal.Decimal
	Currency              Currency
	AmountInBaseCurrency  decimal.Decimal
	Type                  TransactionType
	Date                  time.Time
	ContactID             *uuid.UUID
	CategoryID            *uuid.UUID
	ProjectID             *uuid.UUID
	Allocations           []Allocation
	Description           string
	Notes                 string
	RawInputID            *uuid.UUID
	IsRecurring           bool
	RecurringGroupID      *uuid.UUID
	NeedsReview           bool
	Confidence            *float64
	ReviewReason          *ReviewReason
	PotentialDuplicateIDs []uuid.UUID
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewTransaction creates a new Transaction entity, deriving the base
// currency amount at construction time.
func NewTransaction(
	amount decimal.Decimal,
	currency Currency,
	transactionType TransactionType,
	date time.Time,
	contactID *uuid.UUID,
	categoryID *uuid.UUID,
	projectID *uuid.UUID,
	description string,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:                   uuid.New(),
		Amount:               amount,
		Currency:             currency,
		AmountInBaseCurrency: ToBaseCurrency(amount, currency),
		Type:                 transactionType,
		Date:                 date,
		ContactID:            contactID,
		CategoryID:           categoryID,
		ProjectID:            projectID,
		Description:          description,
		Notes:                notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// TransactionWithRefs carries a transaction together with the display
// names of its referenced contact, category and project.
type TransactionWithRefs struct {
	Transaction  *Transaction
	ContactName  string
	CategoryName string
	ProjectName  string
}

// TransactionTotals represents aggregated totals for a filtered set.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// TransactionsByDate represents one day-bucket of transactions.
type TransactionsByDate struct {
	Date         time.Time
	Transactions []*TransactionWithRefs
	DailyTotal   decimal.Decimal
}
