// Package dataexchange contains export and import use cases.
package dataexchange

import (
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// SchemaVersion is the version stamped into exported documents. Bump
// it whenever the document shape changes incompatibly.
const SchemaVersion = 1

// DocumentMetadata describes an exported document.
type DocumentMetadata struct {
	SchemaVersion int    `json:"schemaVersion"`
	ExportedAt    string `json:"exportedAt"`
}

// Document is the flat export format: every entity collection plus
// metadata. Derived contact aggregates travel with the contacts but
// are recomputed on import, so a hand-edited document cannot corrupt
// the caches.
type Document struct {
	Categories            []*entity.Category             `json:"categories"`
	Projects              []*entity.Project              `json:"projects"`
	Contacts              []*entity.Contact              `json:"contacts"`
	Transactions          []*entity.Transaction          `json:"transactions"`
	RecurringTransactions []*entity.RecurringTransaction `json:"recurringTransactions"`
	Metadata              DocumentMetadata               `json:"metadata"`
}
