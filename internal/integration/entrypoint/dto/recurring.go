// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// CreateRecurringRequest represents the request body for template creation.
type CreateRecurringRequest struct {
	Name        string  `json:"name" binding:"required,min=1"`
	Amount      string  `json:"amount" binding:"required"`
	Currency    string  `json:"currency,omitempty" binding:"omitempty,oneof=INR USD"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Frequency   string  `json:"frequency" binding:"required,oneof=weekly monthly quarterly yearly"`
	ContactID   *string `json:"contactId,omitempty"`
	CategoryID  *string `json:"categoryId,omitempty"`
	ProjectID   *string `json:"projectId,omitempty"`
	Description string  `json:"description,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// UpdateRecurringRequest represents the request body for template update.
type UpdateRecurringRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Amount      *string `json:"amount,omitempty"`
	Currency    *string `json:"currency,omitempty" binding:"omitempty,oneof=INR USD"`
	Type        *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Frequency   *string `json:"frequency,omitempty" binding:"omitempty,oneof=weekly monthly quarterly yearly"`
	ContactID   *string `json:"contactId,omitempty"`
	CategoryID  *string `json:"categoryId,omitempty"`
	ProjectID   *string `json:"projectId,omitempty"`
	Description *string `json:"description,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// MaterializeRecurringRequest represents the materialization request body.
type MaterializeRecurringRequest struct {
	EffectiveDate  *string `json:"effectiveDate,omitempty"`
	OverrideAmount *string `json:"overrideAmount,omitempty"`
}

// RecurringResponse represents a single template in API responses.
type RecurringResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Amount        string     `json:"amount"`
	Currency      string     `json:"currency"`
	Type          string     `json:"type"`
	Frequency     string     `json:"frequency"`
	ContactID     *string    `json:"contactId,omitempty"`
	CategoryID    *string    `json:"categoryId,omitempty"`
	ProjectID     *string    `json:"projectId,omitempty"`
	Description   string     `json:"description,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	IsActive      bool       `json:"isActive"`
	LastCreatedAt *time.Time `json:"lastCreatedAt,omitempty"`
	NextDueDate   *time.Time `json:"nextDueDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// RecurringListResponse represents the response for listing templates.
type RecurringListResponse struct {
	Recurring []RecurringResponse `json:"recurringTransactions"`
}

// MaterializeRecurringResponse reports a materialization outcome.
type MaterializeRecurringResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Recurring   RecurringResponse   `json:"recurringTransaction"`
}

// ToRecurringResponse converts a domain RecurringTransaction to a DTO.
func ToRecurringResponse(recurring *entity.RecurringTransaction) RecurringResponse {
	response := RecurringResponse{
		ID:            recurring.ID.String(),
		Name:          recurring.Name,
		Amount:        recurring.Amount.String(),
		Currency:      string(recurring.Currency),
		Type:          string(recurring.Type),
		Frequency:     string(recurring.Frequency),
		Description:   recurring.Description,
		Notes:         recurring.Notes,
		IsActive:      recurring.IsActive,
		LastCreatedAt: recurring.LastCreatedAt,
		NextDueDate:   recurring.NextDueDate,
		CreatedAt:     recurring.CreatedAt,
		UpdatedAt:     recurring.UpdatedAt,
	}
	if recurring.ContactID != nil {
		id := recurring.ContactID.String()
		response.ContactID = &id
	}
	if recurring.CategoryID != nil {
		id := recurring.CategoryID.String()
		response.CategoryID = &id
	}
	if recurring.ProjectID != nil {
		id := recurring.ProjectID.String()
		response.ProjectID = &id
	}
	return response
}

// ToRecurringListResponse converts domain templates to a RecurringListResponse.
func ToRecurringListResponse(recurring []*entity.RecurringTransaction) RecurringListResponse {
	responses := make([]RecurringResponse, len(recurring))
	for i, r := range recurring {
		responses[i] = ToRecurringResponse(r)
	}
	return RecurringListResponse{Recurring: responses}
}
