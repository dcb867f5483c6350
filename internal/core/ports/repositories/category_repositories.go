package repositories

import (
	"context"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByName retrieves a category by case-insensitive name
	// within its kind namespace.
	FindCategoryByName(ctx context.Context, kind domain.CategoryKind, name string) (*domain.Category, error)

	// ListCategoriesByKind retrieves all categories of one kind ordered by name.
	ListCategoriesByKind(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)

	// ListCategories retrieves all categories ordered by kind then name.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category and returns its assigned identifier.
	SaveCategory(ctx context.Context, category domain.Category) (int64, error)

	// RenameCategory updates the unique name in place.
	RenameCategory(ctx context.Context, categoryID int64, newName string) error

	// DeleteCategoryCascade removes the category together with its dependent
	// classifications, budgets and recurrences in one database transaction.
	DeleteCategoryCascade(ctx context.Context, categoryID int64) error

	// UpsertClassification assigns a category to a transaction, replacing
	// any existing classification for that transaction.
	UpsertClassification(ctx context.Context, transactionID int64, categoryID int64) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
