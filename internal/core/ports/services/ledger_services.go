// Package services defines the operation facades the command surface calls.
// Every operation takes primitive arguments and returns either a result
// payload or a classified error from internal/apperrors; turning the error
// into a user-visible message is the command surface's job.
package services

import (
	"context"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/SscSPs/personal_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountSvcFacade exposes account operations.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, accountNumber, name, institution string) (*domain.Account, error)
	GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// ImportSvcFacade exposes the import pipeline.
type ImportSvcFacade interface {
	// ImportStatement validates, fingerprints, dedup-filters and atomically
	// persists a normalized adapter batch for one account.
	ImportStatement(ctx context.Context, accountID int64, records []dto.StatementRecord) (*dto.ImportResult, error)
}

// ChunkSvcFacade exposes the split state machine.
type ChunkSvcFacade interface {
	// StageSplit validates chunks against the parent and returns the staged
	// split (whole -> split-pending). Nothing is persisted.
	StageSplit(ctx context.Context, transactionID int64, chunks []dto.ChunkInput) (*domain.PendingSplit, error)

	// CommitSplit persists a staged split atomically
	// (split-pending -> split-committed).
	CommitSplit(ctx context.Context, pending *domain.PendingSplit) ([]domain.Transaction, error)

	// Split stages and commits in one step for non-interactive callers.
	Split(ctx context.Context, transactionID int64, chunks []dto.ChunkInput) ([]domain.Transaction, error)
}

// CategorySvcFacade exposes category management and classification.
type CategorySvcFacade interface {
	AddCategory(ctx context.Context, name string, kind domain.CategoryKind) (*dto.AddCategoryResult, error)
	ClassifyTransaction(ctx context.Context, transactionID int64, categoryName string) error
	RenameCategory(ctx context.Context, kind domain.CategoryKind, oldName, newName string) error
	// DeleteCategory cascades and returns false (not an error) when the
	// category does not exist.
	DeleteCategory(ctx context.Context, kind domain.CategoryKind, name string) (bool, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// TransactionSvcFacade exposes transaction attachments.
type TransactionSvcFacade interface {
	GetTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error)
	AnnotateTransaction(ctx context.Context, transactionID int64, note string) error
	LinkAccount(ctx context.Context, transactionID int64, accountID int64) error
}

// BudgetSvcFacade exposes per-category spending limits.
type BudgetSvcFacade interface {
	SetLimit(ctx context.Context, categoryName string, kind domain.CategoryKind, unit string, frequency int64, limit decimal.Decimal) (*domain.BudgetWithRecurrence, error)
	ModifyLimit(ctx context.Context, categoryName string, kind domain.CategoryKind, unit string, frequency int64, limit decimal.Decimal) error
	// DeleteLimit returns false (not an error) when the category has no budget.
	DeleteLimit(ctx context.Context, categoryName string, kind domain.CategoryKind) (bool, error)
}

// ReportingSvcFacade exposes the read-only aggregations.
type ReportingSvcFacade interface {
	MonthlyBalance(ctx context.Context, year int, month time.Month) (decimal.Decimal, error)
	MonthlyStatement(ctx context.Context, year int, month time.Month) ([]domain.StatementLine, error)
	CategorySummary(ctx context.Context, year int, month time.Month) ([]domain.CategoryTotal, error)
	BudgetSummary(ctx context.Context, displayUnit string) ([]domain.BudgetLine, error)
}
