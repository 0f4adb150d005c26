// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ContactFilter defines filter options for listing contacts.
type ContactFilter struct {
	Search    string
	ProjectID *uuid.UUID
}

// ContactRepository defines the interface for contact persistence operations.
type ContactRepository interface {
	// FindAll retrieves contacts matching the filter, ordered by name.
	FindAll(ctx context.Context, filter ContactFilter) ([]*entity.Contact, error)

	// FindByID retrieves a contact by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// FindByNameOrAlias retrieves the first contact whose name or any
	// alias matches the given name case-insensitively. Returns
	// ErrContactNotFound when no contact matches.
	FindByNameOrAlias(ctx context.Context, name string) (*entity.Contact, error)

	// Create persists a new contact and returns the freshly-read row.
	Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)

	// Update persists changes to an existing contact and returns the
	// freshly-read row. Returns ErrContactNotFound for a missing ID.
	// Cached aggregate fields are not writable through Update; they are
	// owned by RecalculateAggregates.
	Update(ctx context.Context, contact *entity.Contact) (*entity.Contact, error)

	// Delete removes a contact. It enforces the zero-reference guard
	// and fails with a ReferentialIntegrityError while any transaction
	// or recurring transaction references the contact. Returns false
	// without error when the ID does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// RecalculateAggregates re-derives totalSpent, totalReceived and
	// transactionCount from a full scan over the contact's transactions
	// and writes them back unconditionally.
	RecalculateAggregates(ctx context.Context, contactID uuid.UUID) error
}
