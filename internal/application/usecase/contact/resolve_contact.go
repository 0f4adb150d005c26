// Package contact contains contact-related use cases.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// ResolveContactInput represents the input for contact resolution.
type ResolveContactInput struct {
	Name string
}

// ResolveContactOutput represents the output of contact resolution.
type ResolveContactOutput struct {
	Contact *entity.Contact
	Created bool
}

// ResolveContactUseCase resolves a free-form contact name to a contact,
// matching name or alias case-insensitively and creating a minimal
// contact when no match exists. Transaction creation paths share this
// so the same name always lands on the same contact.
type ResolveContactUseCase struct {
	contactRepo adapter.ContactRepository
}

// NewResolveContactUseCase creates a new ResolveContactUseCase instance.
func NewResolveContactUseCase(contactRepo adapter.ContactRepository) *ResolveContactUseCase {
	return &ResolveContactUseCase{
		contactRepo: contactRepo,
	}
}

// Execute performs the contact resolution.
func (uc *ResolveContactUseCase) Execute(ctx context.Context, input ResolveContactInput) (*ResolveContactOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewContactError(
			domainerror.ErrCodeContactNameRequired,
			"contact name is required",
			domainerror.ErrContactNameRequired,
		)
	}

	existing, err := uc.contactRepo.FindByNameOrAlias(ctx, name)
	if err == nil {
		return &ResolveContactOutput{
			Contact: existing,
			Created: false,
		}, nil
	}
	if !errors.Is(err, domainerror.ErrContactNotFound) {
		return nil, fmt.Errorf("failed to resolve contact: %w", err)
	}

	created, err := uc.contactRepo.Create(ctx, entity.NewContact(name, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return &ResolveContactOutput{
		Contact: created,
		Created: true,
	}, nil
}
