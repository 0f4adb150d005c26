// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// CategoryFilter defines filter options for listing categories.
// Absent fields impose no constraint; present fields compose conjunctively.
type CategoryFilter struct {
	Type   *entity.CategoryType
	Search string
}

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// FindAll retrieves categories matching the filter, ordered by name.
	FindAll(ctx context.Context, filter CategoryFilter) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// Create persists a new category and returns the freshly-read row.
	Create(ctx context.Context, category *entity.Category) (*entity.Category, error)

	// Update persists changes to an existing category and returns the
	// freshly-read row. Returns ErrCategoryNotFound for a missing ID.
	Update(ctx context.Context, category *entity.Category) (*entity.Category, error)

	// Delete removes a category. It enforces the zero-reference guard
	// and fails with a ReferentialIntegrityError while any transaction
	// or recurring transaction references the category. Returns false
	// without error when the ID does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// CountReferences returns the number of transactions and recurring
	// transactions referencing the category.
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
}
