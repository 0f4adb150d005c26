// Package contact contains contact-related use cases.
package contact

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// GetContactInput represents the input for contact retrieval.
type GetContactInput struct {
	ID uuid.UUID
}

// GetContactOutput represents the output of contact retrieval.
type GetContactOutput struct {
	Contact *entity.Contact
}

// GetContactUseCase handles contact retrieval logic.
type GetContactUseCase struct {
	contactRepo adapter.ContactRepository
}

// NewGetContactUseCase creates a new GetContactUseCase instance.
func NewGetContactUseCase(contactRepo adapter.ContactRepository) *GetContactUseCase {
	return &GetContactUseCase{
		contactRepo: contactRepo,
	}
}

// Execute performs the contact retrieval.
func (uc *GetContactUseCase) Execute(ctx context.Context, input GetContactInput) (*GetContactOutput, error) {
	contact, err := uc.contactRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetContactOutput{
		Contact: contact,
	}, nil
}
