// Package contact contains contact-related use cases.
package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ListContactsInput represents the input for contact listing.
type ListContactsInput struct {
	Search    string
	ProjectID *uuid.UUID
}

// ListContactsOutput represents the output of contact listing.
type ListContactsOutput struct {
	Contacts []*entity.Contact
}

// ListContactsUseCase handles contact listing logic.
type ListContactsUseCase struct {
	contactRepo adapter.ContactRepository
}

// NewListContactsUseCase creates a new ListContactsUseCase instance.
func NewListContactsUseCase(contactRepo adapter.ContactRepository) *ListContactsUseCase {
	return &ListContactsUseCase{
		contactRepo: contactRepo,
	}
}

// Execute performs the contact listing.
func (uc *ListContactsUseCase) Execute(ctx context.Context, input ListContactsInput) (*ListContactsOutput, error) {
	contacts, err := uc.contactRepo.FindAll(ctx, adapter.ContactFilter{
		Search:    input.Search,
		ProjectID: input.ProjectID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return &ListContactsOutput{
		Contacts: contacts,
	}, nil
}
