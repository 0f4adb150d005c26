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

// CreateContactInput represents the input for contact creation.
type CreateContactInput struct {
	Name              string
	Aliases           []string
	Email             string
	Phone             string
	Company           string
	Website           string
	Notes             string
	DefaultCategoryID *uuid.UUID
	ProjectID         *uuid.UUID
}

// CreateContactOutput represents the output of contact creation.
type CreateContactOutput struct {
	Contact *entity.Contact
}

// CreateContactUseCase handles contact creation logic.
type CreateContactUseCase struct {
	contactRepo adapter.ContactRepository
}

// NewCreateContactUseCase creates a new CreateContactUseCase instance.
func NewCreateContactUseCase(contactRepo adapter.ContactRepository) *CreateContactUseCase {
	return &CreateContactUseCase{
		contactRepo: contactRepo,
	}
}

// Execute performs the contact creation. Aggregates start at zero and
// are owned by the aggregate recalculation path from then on.
func (uc *CreateContactUseCase) Execute(ctx context.Context, input CreateContactInput) (*CreateContactOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewContactError(
			domainerror.ErrCodeContactNameRequired,
			"contact name is required",
			domainerror.ErrContactNameRequired,
		)
	}

	contact := entity.NewContact(name, normalizeAliases(input.Aliases))
	contact.Email = input.Email
	contact.Phone = input.Phone
	contact.Company = input.Company
	contact.Website = input.Website
	contact.Notes = input.Notes
	contact.DefaultCategoryID = input.DefaultCategoryID
	contact.ProjectID = input.ProjectID

	created, err := uc.contactRepo.Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return &CreateContactOutput{
		Contact: created,
	}, nil
}

// normalizeAliases trims aliases and drops empty entries.
func normalizeAliases(aliases []string) []string {
	var out []string
	for _, alias := range aliases {
		trimmed := strings.TrimSpace(alias)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
