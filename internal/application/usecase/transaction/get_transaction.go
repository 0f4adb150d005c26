// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// GetTransactionInput represents the input for transaction retrieval.
type GetTransactionInput struct {
	ID uuid.UUID
}

// GetTransactionOutput represents the output of transaction retrieval.
type GetTransactionOutput struct {
	Transaction *entity.TransactionWithRefs
}

// GetTransactionUseCase handles transaction retrieval logic.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction retrieval.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByIDWithRefs(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetTransactionOutput{
		Transaction: transaction,
	}, nil
}
