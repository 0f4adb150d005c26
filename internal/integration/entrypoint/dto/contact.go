// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// CreateContactRequest represents the request body for contact creation.
type CreateContactRequest struct {
	Name              string   `json:"name" binding:"required,min=1"`
	Aliases           []string `json:"aliases,omitempty"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Company           string   `json:"company,omitempty"`
	Website           string   `json:"website,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	DefaultCategoryID *string  `json:"defaultCategoryId,omitempty"`
	ProjectID         *string  `json:"projectId,omitempty"`
}

// UpdateContactRequest represents the request body for contact update.
type UpdateContactRequest struct {
	Name              *string   `json:"name,omitempty" binding:"omitempty,min=1"`
	Aliases           *[]string `json:"aliases,omitempty"`
	Email             *string   `json:"email,omitempty"`
	Phone             *string   `json:"phone,omitempty"`
	Company           *string   `json:"company,omitempty"`
	Website           *string   `json:"website,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
	DefaultCategoryID *string   `json:"defaultCategoryId,omitempty"`
	ProjectID         *string   `json:"projectId,omitempty"`
}

// ContactResponse represents a single contact in API responses.
// The aggregate fields are derived caches maintained by the server.
type ContactResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Aliases           []string  `json:"aliases,omitempty"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Company           string    `json:"company,omitempty"`
	Website           string    `json:"website,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	TotalSpent        string    `json:"totalSpent"`
	TotalReceived     string    `json:"totalReceived"`
	TransactionCount  int       `json:"transactionCount"`
	DefaultCategoryID *string   `json:"defaultCategoryId,omitempty"`
	ProjectID         *string   `json:"projectId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ContactListResponse represents the response for listing contacts.
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

// ToContactResponse converts a domain Contact entity to a ContactResponse DTO.
func ToContactResponse(contact *entity.Contact) ContactResponse {
	response := ContactResponse{
		ID:               contact.ID.String(),
		Name:             contact.Name,
		Aliases:          contact.Aliases,
		Email:            contact.Email,
		Phone:            contact.Phone,
		Company:          contact.Company,
		Website:          contact.Website,
		Notes:            contact.Notes,
		TotalSpent:       contact.TotalSpent.String(),
		TotalReceived:    contact.TotalReceived.String(),
		TransactionCount: contact.TransactionCount,
		CreatedAt:        contact.CreatedAt,
		UpdatedAt:        contact.UpdatedAt,
	}
	if contact.DefaultCategoryID != nil {
		id := contact.DefaultCategoryID.String()
		response.DefaultCategoryID = &id
	}
	if contact.ProjectID != nil {
		id := contact.ProjectID.String()
		response.ProjectID = &id
	}
	return response
}

// ToContactListResponse converts domain contacts to a ContactListResponse.
func ToContactListResponse(contacts []*entity.Contact) ContactListResponse {
	responses := make([]ContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = ToContactResponse(contact)
	}
	return ContactListResponse{Contacts: responses}
}
