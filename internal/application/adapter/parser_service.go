// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ParseContactContext is the read-only contact summary sent to the parser.
type ParseContactContext struct {
	ID      uuid.UUID
	Name    string
	Aliases []string
}

// ParseCategoryContext is the read-only category summary sent to the parser.
type ParseCategoryContext struct {
	ID   uuid.UUID
	Name string
	Type entity.CategoryType
}

// ParseProjectContext is the read-only project summary sent to the parser.
type ParseProjectContext struct {
	ID   uuid.UUID
	Name string
}

// ParseRequest carries raw text plus ledger context for the parser.
type ParseRequest struct {
	Text       string
	Contacts   []ParseContactContext
	Categories []ParseCategoryContext
	Projects   []ParseProjectContext
}

// CandidateTransaction is one parsed transaction suggestion.
// Confidence is in [0,1]; suggested IDs may be nil when the parser
// could not map a name to an existing entity.
type CandidateTransaction struct {
	Amount      decimal.Decimal
	Currency    entity.Currency
	Type        entity.TransactionType
	Date        string // YYYY-MM-DD; empty when the text carried no date
	ContactName string
	CategoryID  *uuid.UUID
	ProjectID   *uuid.UUID
	Description string
	Confidence  float64
}

// ParserService defines the boundary to the external natural-language
// transaction parser. Calls are fallible and cancellable; the ledger's
// consistency never depends on their outcome.
type ParserService interface {
	// IsAvailable reports whether the parser is configured.
	IsAvailable() bool

	// ParseText extracts candidate transactions from free-form text.
	ParseText(ctx context.Context, request *ParseRequest) ([]*CandidateTransaction, error)
}
