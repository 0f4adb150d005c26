// Package dataexchange contains export and import use cases.
package dataexchange

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// exportPageSize bounds each transaction fetch during export.
const exportPageSize = 500

// ExportDataOutput represents the output of a full export.
type ExportDataOutput struct {
	Document *Document
}

// ExportDataUseCase assembles the full ledger into one flat document.
type ExportDataUseCase struct {
	categoryRepo    adapter.CategoryRepository
	projectRepo     adapter.ProjectRepository
	contactRepo     adapter.ContactRepository
	transactionRepo adapter.TransactionRepository
	recurringRepo   adapter.RecurringRepository
}

// NewExportDataUseCase creates a new ExportDataUseCase instance.
func NewExportDataUseCase(
	categoryRepo adapter.CategoryRepository,
	projectRepo adapter.ProjectRepository,
	contactRepo adapter.ContactRepository,
	transactionRepo adapter.TransactionRepository,
	recurringRepo adapter.RecurringRepository,
) *ExportDataUseCase {
	return &ExportDataUseCase{
		categoryRepo:    categoryRepo,
		projectRepo:     projectRepo,
		contactRepo:     contactRepo,
		transactionRepo: transactionRepo,
		recurringRepo:   recurringRepo,
	}
}

// Execute performs the full export. Transactions are drained page by
// page so the export works regardless of ledger size.
func (uc *ExportDataUseCase) Execute(ctx context.Context) (*ExportDataOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx, adapter.CategoryFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to export categories: %w", err)
	}

	projects, err := uc.projectRepo.FindAll(ctx, adapter.ProjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to export projects: %w", err)
	}

	contacts, err := uc.contactRepo.FindAll(ctx, adapter.ContactFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to export contacts: %w", err)
	}

	var transactions []*entity.Transaction
	skip := 0
	for {
		page, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{}, adapter.TransactionPage{
			Skip:  skip,
			Limit: exportPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to export transactions: %w", err)
		}
		for _, txn := range page.Transactions {
			transactions = append(transactions, txn.Transaction)
		}
		if !page.HasMore {
			break
		}
		skip += exportPageSize
	}

	recurring, err := uc.recurringRepo.FindAll(ctx, adapter.RecurringFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to export recurring transactions: %w", err)
	}

	return &ExportDataOutput{
		Document: &Document{
			Categories:            categories,
			Projects:              projects,
			Contacts:              contacts,
			Transactions:          transactions,
			RecurringTransactions: recurring,
			Metadata: DocumentMetadata{
				SchemaVersion: SchemaVersion,
				ExportedAt:    time.Now().UTC().Format(time.RFC3339),
			},
		},
	}, nil
}
