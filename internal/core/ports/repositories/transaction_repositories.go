package repositories

import (
	"context"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its surrogate key.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ExistingHashes returns the subset of candidate hashes already present
	// in the store, used for dedup pre-filtering during import.
	ExistingHashes(ctx context.Context, hashes []string) (map[string]struct{}, error)

	// HasChildren reports whether the transaction is a master record.
	HasChildren(ctx context.Context, transactionID int64) (bool, error)

	// IsChild reports whether the transaction was produced by a split.
	IsChild(ctx context.Context, transactionID int64) (bool, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// BulkInsertTransactions inserts all given transactions in a single
	// database transaction: either every row persists or none does. A
	// uniqueness violation on any row aborts the whole batch and surfaces
	// as apperrors.ErrDuplicate.
	BulkInsertTransactions(ctx context.Context, transactions []domain.Transaction) (int, error)

	// SaveSplit persists the children of a split and one parent/child link
	// per child in a single database transaction. The re-split guard is
	// re-checked inside the transaction; an already split parent surfaces
	// as apperrors.ErrConflict. Returns the children with assigned IDs.
	SaveSplit(ctx context.Context, parentID int64, children []domain.Transaction) ([]domain.Transaction, error)

	// UpsertAnnotation replaces the transaction's free-text note.
	UpsertAnnotation(ctx context.Context, transactionID int64, note string) error

	// LinkAccount attaches a transaction to an account.
	LinkAccount(ctx context.Context, transactionID int64, accountID int64) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
