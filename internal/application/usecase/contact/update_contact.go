// Package contact contains contact-related use cases.
package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// UpdateContactInput represents the input for contact update.
// Nil pointer fields are left unchanged. The cached aggregate fields
// are not updatable through this use case.
type UpdateContactInput struct {
	ID                uuid.UUID
	Name              *string
	Aliases           *[]string
	Email             *string
	Phone             *string
	Company           *string
	Website           *string
	Notes             *string
	DefaultCategoryID *uuid.UUID
	ProjectID         *uuid.UUID
}

// UpdateContactOutput represents the output of contact update.
type UpdateContactOutput struct {
	Contact *entity.Contact
}

// UpdateContactUseCase handles contact update logic.
type UpdateContactUseCase struct {
	contactRepo adapter.ContactRepository
}

// NewUpdateContactUseCase creates a new UpdateContactUseCase instance.
func NewUpdateContactUseCase(contactRepo adapter.ContactRepository) *UpdateContactUseCase {
	return &UpdateContactUseCase{
		contactRepo: contactRepo,
	}
}

// Execute performs the contact update.
func (uc *UpdateContactUseCase) Execute(ctx context.Context, input UpdateContactInput) (*UpdateContactOutput, error) {
	contact, err := uc.contactRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewContactError(
				domainerror.ErrCodeContactNameRequired,
				"contact name is required",
				domainerror.ErrContactNameRequired,
			)
		}
		contact.Name = name
	}
	if input.Aliases != nil {
		contact.Aliases = normalizeAliases(*input.Aliases)
	}
	if input.Email != nil {
		contact.Email = *input.Email
	}
	if input.Phone != nil {
		contact.Phone = *input.Phone
	}
	if input.Company != nil {
		contact.Company = *input.Company
	}
	if input.Website != nil {
		contact.Website = *input.Website
	}
	if input.Notes != nil {
		contact.Notes = *input.Notes
	}
	if input.DefaultCategoryID != nil {
		contact.DefaultCategoryID = input.DefaultCategoryID
	}
	if input.ProjectID != nil {
		contact.ProjectID = input.ProjectID
	}

	updated, err := uc.contactRepo.Update(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return &UpdateContactOutput{
		Contact: updated,
	}, nil
}
