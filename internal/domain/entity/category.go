// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents a transaction category in the ledger.
// System categories are seeded at schema bootstrap and are immutable.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	Icon      string
	Color     string
	IsSystem  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
// Defaulting logic for color and icon is applied in the use case layer
// before calling this constructor.
func NewCategory(name string, categoryType CategoryType, icon, color string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		Icon:      icon,
		Color:     color,
		IsSystem:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
