// Package contact contains contact-related use cases.
package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
)

// DeleteContactInput represents the input for contact deletion.
type DeleteContactInput struct {
	ID uuid.UUID
}

// DeleteContactOutput represents the output of contact deletion.
type DeleteContactOutput struct {
	Deleted bool
}

// DeleteContactUseCase handles contact deletion logic.
type DeleteContactUseCase struct {
	contactRepo adapter.ContactRepository
}

// NewDeleteContactUseCase creates a new DeleteContactUseCase instance.
func NewDeleteContactUseCase(contactRepo adapter.ContactRepository) *DeleteContactUseCase {
	return &DeleteContactUseCase{
		contactRepo: contactRepo,
	}
}

// Execute performs the contact deletion. The referential guard in the
// repository blocks deletion while transactions or recurring templates
// reference the contact.
func (uc *DeleteContactUseCase) Execute(ctx context.Context, input DeleteContactInput) (*DeleteContactOutput, error) {
	if _, err := uc.contactRepo.FindByID(ctx, input.ID); err != nil {
		return nil, err
	}

	deleted, err := uc.contactRepo.Delete(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete contact: %w", err)
	}

	return &DeleteContactOutput{
		Deleted: deleted,
	}, nil
}
