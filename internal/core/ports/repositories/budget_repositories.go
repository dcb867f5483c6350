package repositories

import (
	"context"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudgetByCategoryID retrieves the active budget and its recurrence
	// for a category.
	FindBudgetByCategoryID(ctx context.Context, categoryID int64) (*domain.BudgetWithRecurrence, error)

	// ListBudgets retrieves every budget with its recurrence and category name.
	ListBudgets(ctx context.Context) ([]domain.BudgetWithRecurrence, error)
}

// BudgetWriter defines write operations for budget data. A budget and its
// recurrence are always written, updated and removed as one unit.
type BudgetWriter interface {
	// SaveBudget persists a new recurrence and budget in one database
	// transaction. A second budget for the same category surfaces as
	// apperrors.ErrDuplicate.
	SaveBudget(ctx context.Context, categoryID int64, unit domain.RecurrenceUnit, frequency int64, limit decimal.Decimal) (*domain.BudgetWithRecurrence, error)

	// UpdateBudget rewrites the budget's limit and recurrence in one
	// database transaction.
	UpdateBudget(ctx context.Context, budgetID int64, unit domain.RecurrenceUnit, frequency int64, limit decimal.Decimal) error

	// DeleteBudgetByCategoryID removes the budget and its recurrence in one
	// database transaction. Returns false when the category had no budget.
	DeleteBudgetByCategoryID(ctx context.Context, categoryID int64) (bool, error)
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
