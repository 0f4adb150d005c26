// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Contact represents a person or business money flows to or from.
//
// TotalSpent, TotalReceived and TransactionCount are derived caches:
// at any quiescent point they must equal the aggregate over all
// transactions referencing this contact, partitioned by transaction
// type. They are maintained by a full rescan on every transaction
// mutation that touches the contact.
type Contact struct {
	ID                uuid.UUID
	Name              string
	Aliases           []string
	Email             string
	Phone             string
	Company           string
	Website           string
	Notes             string
	TotalSpent        decimal.Decimal
	TotalReceived     decimal.Decimal
	TransactionCount  int
	DefaultCategoryID *uuid.UUID
	ProjectID         *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewContact creates a new Contact entity with zeroed aggregates.
func NewContact(name string, aliases []string) *Contact {
	now := time.Now().UTC()

	return &Contact{
		ID:            uuid.New(),
		Name:          name,
		Aliases:       aliases,
		TotalSpent:    decimal.Zero,
		TotalReceived: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// MatchesName reports whether the given name matches the contact's
// name or any of its aliases, comparing case-insensitively.
func (c *Contact) MatchesName(name string) bool {
	if equalFold(c.Name, name) {
		return true
	}
	for _, alias := range c.Aliases {
		if equalFold(alias, name) {
			return true
		}
	}
	return false
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
