package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_ledger_app/internal/models"
	"github.com/SscSPs/personal_ledger_app/internal/utils/mapping"
)

type SQLiteCategoryRepository struct {
	BaseRepository
}

// newSQLiteCategoryRepository creates a new repository for category data.
func newSQLiteCategoryRepository(db *sql.DB) portsrepo.CategoryRepositoryFacade {
	return &SQLiteCategoryRepository{BaseRepository{DB: db}}
}

// Ensure SQLiteCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*SQLiteCategoryRepository)(nil)

// SaveCategory persists a new category and returns its assigned identifier.
func (r *SQLiteCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (int64, error) {
	query := `
		INSERT INTO categories (kind, name, created_at)
		VALUES (?, ?, ?);
	`
	res, err := r.DB.ExecContext(ctx, query,
		string(category.Kind),
		category.Name,
		formatTimestamp(category.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: category %q already exists for kind %s", apperrors.ErrDuplicate, category.Name, category.Kind)
		}
		return 0, fmt.Errorf("failed to save category %q: %w", category.Name, err)
	}

	categoryID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new category ID: %w", err)
	}
	return categoryID, nil
}

// FindCategoryByName retrieves a category by case-insensitive name within its
// kind namespace. The name column collates NOCASE so equality is enough.
func (r *SQLiteCategoryRepository) FindCategoryByName(ctx context.Context, kind domain.CategoryKind, name string) (*domain.Category, error) {
	query := `
		SELECT category_id, kind, name, created_at
		FROM categories
		WHERE kind = ? AND name = ?;
	`
	var m models.Category
	var createdAt string
	err := r.DB.QueryRowContext(ctx, query, string(kind), name).Scan(
		&m.CategoryID,
		&m.Kind,
		&m.Name,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: category %q (%s)", apperrors.ErrNotFound, name, kind)
		}
		return nil, fmt.Errorf("failed to find category %q: %w", name, err)
	}
	if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	d := mapping.ToDomainCategory(m)
	return &d, nil
}

// ListCategoriesByKind retrieves all categories of one kind ordered by name.
func (r *SQLiteCategoryRepository) ListCategoriesByKind(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	query := `
		SELECT category_id, kind, name, created_at
		FROM categories
		WHERE kind = ?
		ORDER BY name;
	`
	return r.listCategories(ctx, query, string(kind))
}

// ListCategories retrieves all categories ordered by kind then name.
func (r *SQLiteCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT category_id, kind, name, created_at
		FROM categories
		ORDER BY kind, name;
	`
	return r.listCategories(ctx, query)
}

func (r *SQLiteCategoryRepository) listCategories(ctx context.Context, query string, args ...any) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var ms []models.Category
	for rows.Next() {
		var m models.Category
		var createdAt string
		if err := rows.Scan(&m.CategoryID, &m.Kind, &m.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

// RenameCategory updates the unique name in place.
func (r *SQLiteCategoryRepository) RenameCategory(ctx context.Context, categoryID int64, newName string) error {
	query := `UPDATE categories SET name = ? WHERE category_id = ?;`
	res, err := r.DB.ExecContext(ctx, query, newName, categoryID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, newName)
		}
		return fmt.Errorf("failed to rename category %d: %w", categoryID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rename result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: category %d", apperrors.ErrNotFound, categoryID)
	}
	return nil
}

// DeleteCategoryCascade removes the category together with its dependent
// classifications, budget and recurrence in one database transaction.
func (r *SQLiteCategoryRepository) DeleteCategoryCascade(ctx context.Context, categoryID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(tx)

	// Dependents first: budgets reference both the category and its
	// recurrence, so they go before recurrences.
	steps := []string{
		`DELETE FROM classifications WHERE category_id = ?;`,
		`DELETE FROM budgets WHERE category_id = ?;`,
		`DELETE FROM recurrences WHERE category_id = ?;`,
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step, categoryID); err != nil {
			return fmt.Errorf("failed to delete category %d dependents: %w", categoryID, err)
		}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE category_id = ?;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", categoryID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: category %d", apperrors.ErrNotFound, categoryID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit category %d deletion: %w", categoryID, err)
	}
	return nil
}

// UpsertClassification assigns a category to a transaction, replacing any
// existing classification for that transaction.
func (r *SQLiteCategoryRepository) UpsertClassification(ctx context.Context, transactionID int64, categoryID int64) error {
	query := `
		INSERT INTO classifications (transaction_id, category_id)
		VALUES (?, ?)
		ON CONFLICT (transaction_id) DO UPDATE SET category_id = excluded.category_id;
	`
	if _, err := r.DB.ExecContext(ctx, query, transactionID, categoryID); err != nil {
		return fmt.Errorf("failed to classify transaction %d: %w", transactionID, err)
	}
	return nil
}
