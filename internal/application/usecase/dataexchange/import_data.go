// Package dataexchange contains export and import use cases.
package dataexchange

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// ErrUnsupportedSchemaVersion is returned when the document was
// exported by an incompatible version.
var ErrUnsupportedSchemaVersion = errors.New("unsupported schema version")

// ImportDataInput represents the input for a document import.
type ImportDataInput struct {
	Document *Document
}

// ImportCounts holds imported/skipped tallies for one entity type.
type ImportCounts struct {
	Imported int
	Skipped  int
}

// ImportDataOutput reports per-entity import results.
type ImportDataOutput struct {
	Categories            ImportCounts
	Projects              ImportCounts
	Contacts              ImportCounts
	Transactions          ImportCounts
	RecurringTransactions ImportCounts
}

// ImportDataUseCase merges a document into the ledger additively:
// rows whose IDs already exist are skipped, never overwritten.
type ImportDataUseCase struct {
	categoryRepo    adapter.CategoryRepository
	projectRepo     adapter.ProjectRepository
	contactRepo     adapter.ContactRepository
	transactionRepo adapter.TransactionRepository
	recurringRepo   adapter.RecurringRepository
}

// NewImportDataUseCase creates a new ImportDataUseCase instance.
func NewImportDataUseCase(
	categoryRepo adapter.CategoryRepository,
	projectRepo adapter.ProjectRepository,
	contactRepo adapter.ContactRepository,
	transactionRepo adapter.TransactionRepository,
	recurringRepo adapter.RecurringRepository,
) *ImportDataUseCase {
	return &ImportDataUseCase{
		categoryRepo:    categoryRepo,
		projectRepo:     projectRepo,
		contactRepo:     contactRepo,
		transactionRepo: transactionRepo,
		recurringRepo:   recurringRepo,
	}
}

// Execute performs the import. Referenced entities are imported before
// the transactions that point at them. Imported transactions run the
// contact aggregate recalculation through the bulk create path, so the
// cached totals come out consistent even when the document carried
// stale aggregate values.
func (uc *ImportDataUseCase) Execute(ctx context.Context, input ImportDataInput) (*ImportDataOutput, error) {
	doc := input.Document
	if doc == nil {
		return nil, errors.New("document is required")
	}
	if doc.Metadata.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedSchemaVersion, doc.Metadata.SchemaVersion, SchemaVersion)
	}

	output := &ImportDataOutput{}

	for _, category := range doc.Categories {
		exists, err := uc.categoryExists(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			output.Categories.Skipped++
			continue
		}
		if _, err := uc.categoryRepo.Create(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to import category %s: %w", category.ID, err)
		}
		output.Categories.Imported++
	}

	for _, project := range doc.Projects {
		exists, err := uc.projectExists(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			output.Projects.Skipped++
			continue
		}
		if _, err := uc.projectRepo.Create(ctx, project); err != nil {
			return nil, fmt.Errorf("failed to import project %s: %w", project.ID, err)
		}
		output.Projects.Imported++
	}

	for _, contact := range doc.Contacts {
		exists, err := uc.contactExists(ctx, contact.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			output.Contacts.Skipped++
			continue
		}
		if _, err := uc.contactRepo.Create(ctx, contact); err != nil {
			return nil, fmt.Errorf("failed to import contact %s: %w", contact.ID, err)
		}
		output.Contacts.Imported++
	}

	var newTransactions []*entity.Transaction
	for _, transaction := range doc.Transactions {
		exists, err := uc.transactionExists(ctx, transaction.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			output.Transactions.Skipped++
			continue
		}
		newTransactions = append(newTransactions, transaction)
	}
	if len(newTransactions) > 0 {
		if err := uc.transactionRepo.BulkCreate(ctx, newTransactions); err != nil {
			return nil, fmt.Errorf("failed to import transactions: %w", err)
		}
	}
	output.Transactions.Imported = len(newTransactions)

	for _, recurring := range doc.RecurringTransactions {
		exists, err := uc.recurringExists(ctx, recurring.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			output.RecurringTransactions.Skipped++
			continue
		}
		if _, err := uc.recurringRepo.Create(ctx, recurring); err != nil {
			return nil, fmt.Errorf("failed to import recurring transaction %s: %w", recurring.ID, err)
		}
		output.RecurringTransactions.Imported++
	}

	return output, nil
}

func (uc *ImportDataUseCase) categoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := uc.categoryRepo.FindByID(ctx, id)
	return existsFromLookup(err, domainerror.ErrCategoryNotFound)
}

func (uc *ImportDataUseCase) projectExists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := uc.projectRepo.FindByID(ctx, id)
	return existsFromLookup(err, domainerror.ErrProjectNotFound)
}

func (uc *ImportDataUseCase) contactExists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := uc.contactRepo.FindByID(ctx, id)
	return existsFromLookup(err, domainerror.ErrContactNotFound)
}

func (uc *ImportDataUseCase) transactionExists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := uc.transactionRepo.FindByID(ctx, id)
	return existsFromLookup(err, domainerror.ErrTransactionNotFound)
}

func (uc *ImportDataUseCase) recurringExists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := uc.recurringRepo.FindByID(ctx, id)
	return existsFromLookup(err, domainerror.ErrRecurringNotFound)
}

func existsFromLookup(err, notFound error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, notFound) {
		return false, nil
	}
	return false, err
}
