// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// AllocationDTO mirrors an allocation entry on the wire.
type AllocationDTO struct {
	TargetID string `json:"targetId"`
	Share    string `json:"share"`
}

// CreateTransactionRequest represents the request body for transaction creation.
// Either contactId or contactName can carry the contact; contactName is
// resolved (and the contact created when absent) server side.
type CreateTransactionRequest struct {
	Amount      string          `json:"amount" binding:"required"`
	Currency    string          `json:"currency,omitempty" binding:"omitempty,oneof=INR USD"`
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	Date        string          `json:"date,omitempty"`
	ContactID   *string         `json:"contactId,omitempty"`
	ContactName string          `json:"contactName,omitempty"`
	CategoryID  *string         `json:"categoryId,omitempty"`
	ProjectID   *string         `json:"projectId,omitempty"`
	Allocations []AllocationDTO `json:"allocations,omitempty"`
	Description string          `json:"description,omitempty" binding:"omitempty,max=255"`
	Notes       string          `json:"notes,omitempty" binding:"omitempty,max=1000"`
	RawInputID  *string         `json:"rawInputId,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Amount        *string          `json:"amount,omitempty"`
	Currency      *string          `json:"currency,omitempty" binding:"omitempty,oneof=INR USD"`
	Type          *string          `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Date          *string          `json:"date,omitempty"`
	ContactID     *string          `json:"contactId,omitempty"`
	ClearContact  bool             `json:"clearContact,omitempty"`
	CategoryID    *string          `json:"categoryId,omitempty"`
	ClearCategory bool             `json:"clearCategory,omitempty"`
	ProjectID     *string          `json:"projectId,omitempty"`
	ClearProject  bool             `json:"clearProject,omitempty"`
	Allocations   *[]AllocationDTO `json:"allocations,omitempty"`
	Description   *string          `json:"description,omitempty" binding:"omitempty,max=255"`
	Notes         *string          `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// BulkTransactionItemRequest is one entry of a bulk creation request.
type BulkTransactionItemRequest struct {
	Amount       string   `json:"amount" binding:"required"`
	Currency     string   `json:"currency,omitempty" binding:"omitempty,oneof=INR USD"`
	Type         string   `json:"type" binding:"required,oneof=expense income"`
	Date         string   `json:"date,omitempty"`
	ContactName  string   `json:"contactName,omitempty"`
	CategoryID   *string  `json:"categoryId,omitempty"`
	ProjectID    *string  `json:"projectId,omitempty"`
	Description  string   `json:"description,omitempty" binding:"omitempty,max=255"`
	Notes        string   `json:"notes,omitempty" binding:"omitempty,max=1000"`
	NeedsReview           bool     `json:"needsReview,omitempty"`
	Confidence            *float64 `json:"confidence,omitempty"`
	ReviewReason          *string  `json:"reviewReason,omitempty" binding:"omitempty,oneof=low_confidence potential_duplicate incomplete"`
	PotentialDuplicateIDs []string `json:"potentialDuplicateIds,omitempty"`
}

// BulkCreateTransactionsRequest represents the bulk creation request body.
// rawInputId applies to the whole batch.
type BulkCreateTransactionsRequest struct {
	Transactions []BulkTransactionItemRequest `json:"transactions" binding:"required,min=1"`
	RawInputID   *string                      `json:"rawInputId,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                    string          `json:"id"`
	Amount                string          `json:"amount"`
	Currency              string          `json:"currency"`
	AmountInBaseCurrency  string          `json:"amountInBaseCurrency"`
	Type                  string          `json:"type"`
	Date                  time.Time       `json:"date"`
	ContactID             *string         `json:"contactId,omitempty"`
	ContactName           string          `json:"contactName,omitempty"`
	CategoryID            *string         `json:"categoryId,omitempty"`
	CategoryName          string          `json:"categoryName,omitempty"`
	ProjectID             *string         `json:"projectId,omitempty"`
	ProjectName           string          `json:"projectName,omitempty"`
	Allocations           []AllocationDTO `json:"allocations,omitempty"`
	Description           string          `json:"description,omitempty"`
	Notes                 string          `json:"notes,omitempty"`
	IsRecurring           bool            `json:"isRecurring"`
	RecurringGroupID      *string         `json:"recurringGroupId,omitempty"`
	RawInputID            *string         `json:"rawInputId,omitempty"`
	NeedsReview           bool            `json:"needsReview"`
	Confidence            *float64        `json:"confidence,omitempty"`
	ReviewReason          *string         `json:"reviewReason,omitempty"`
	PotentialDuplicateIDs []string        `json:"potentialDuplicateIds,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

// TransactionListResponse represents one page of a filtered listing.
type TransactionListResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	Total         int64                 `json:"total"`
	TotalIncome   string                `json:"totalIncome"`
	TotalExpenses string                `json:"totalExpenses"`
	HasMore       bool                  `json:"hasMore"`
}

// BulkCreateTransactionsResponse reports the bulk creation outcome.
type BulkCreateTransactionsResponse struct {
	CreatedCount    int                   `json:"createdCount"`
	ContactsCreated int                   `json:"contactsCreated"`
	Transactions    []TransactionResponse `json:"transactions"`
}

// GroupedTransactionsResponse is one day-bucket of a grouped listing.
type GroupedTransactionsResponse struct {
	Date         string                `json:"date"`
	Transactions []TransactionResponse `json:"transactions"`
	DailyTotal   string                `json:"dailyTotal"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:                   transaction.ID.String(),
		Amount:               transaction.Amount.String(),
		Currency:             string(transaction.Currency),
		AmountInBaseCurrency: transaction.AmountInBaseCurrency.String(),
		Type:                 string(transaction.Type),
		Date:                 transaction.Date,
		Description:          transaction.Description,
		Notes:                transaction.Notes,
		IsRecurring:          transaction.IsRecurring,
		NeedsReview:          transaction.NeedsReview,
		Confidence:           transaction.Confidence,
		CreatedAt:            transaction.CreatedAt,
		UpdatedAt:            transaction.UpdatedAt,
	}
	if transaction.ContactID != nil {
		id := transaction.ContactID.String()
		response.ContactID = &id
	}
	if transaction.CategoryID != nil {
		id := transaction.CategoryID.String()
		response.CategoryID = &id
	}
	if transaction.ProjectID != nil {
		id := transaction.ProjectID.String()
		response.ProjectID = &id
	}
	if transaction.RecurringGroupID != nil {
		id := transaction.RecurringGroupID.String()
		response.RecurringGroupID = &id
	}
	if transaction.RawInputID != nil {
		id := transaction.RawInputID.String()
		response.RawInputID = &id
	}
	if transaction.ReviewReason != nil {
		reason := string(*transaction.ReviewReason)
		response.ReviewReason = &reason
	}
	for _, allocation := range transaction.Allocations {
		response.Allocations = append(response.Allocations, AllocationDTO{
			TargetID: allocation.TargetID.String(),
			Share:    allocation.Share.String(),
		})
	}
	for _, duplicateID := range transaction.PotentialDuplicateIDs {
		response.PotentialDuplicateIDs = append(response.PotentialDuplicateIDs, duplicateID.String())
	}
	return response
}

// ToTransactionWithRefsResponse converts a TransactionWithRefs to a DTO,
// filling in the referenced display names.
func ToTransactionWithRefsResponse(withRefs *entity.TransactionWithRefs) TransactionResponse {
	response := ToTransactionResponse(withRefs.Transaction)
	response.ContactName = withRefs.ContactName
	response.CategoryName = withRefs.CategoryName
	response.ProjectName = withRefs.ProjectName
	return response
}
