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
	"github.com/shopspring/decimal"
)

type SQLiteBudgetRepository struct {
	BaseRepository
}

// newSQLiteBudgetRepository creates a new repository for budget data.
func newSQLiteBudgetRepository(db *sql.DB) portsrepo.BudgetRepositoryFacade {
	return &SQLiteBudgetRepository{BaseRepository{DB: db}}
}

// Ensure SQLiteBudgetRepository implements portsrepo.BudgetRepositoryFacade
var _ portsrepo.BudgetRepositoryFacade = (*SQLiteBudgetRepository)(nil)

const budgetJoin = `
	SELECT b.budget_id, b.category_id, b.recurrence_id, b.limit_amount,
	       r.recurrence_id, r.category_id, r.unit, r.frequency,
	       c.name
	FROM budgets b
	JOIN recurrences r ON r.recurrence_id = b.recurrence_id
	JOIN categories c ON c.category_id = b.category_id
`

func scanBudgetWithRecurrence(scan func(dest ...any) error) (domain.BudgetWithRecurrence, error) {
	var mb models.Budget
	var mr models.Recurrence
	var categoryName string
	var limit string
	if err := scan(
		&mb.BudgetID,
		&mb.CategoryID,
		&mb.RecurrenceID,
		&limit,
		&mr.RecurrenceID,
		&mr.CategoryID,
		&mr.Unit,
		&mr.Frequency,
		&categoryName,
	); err != nil {
		return domain.BudgetWithRecurrence{}, err
	}
	if err := mb.LimitAmount.Scan(limit); err != nil {
		return domain.BudgetWithRecurrence{}, fmt.Errorf("%w: malformed stored limit %q: %v", apperrors.ErrInternal, limit, err)
	}
	return domain.BudgetWithRecurrence{
		Budget:       mapping.ToDomainBudget(mb),
		Recurrence:   mapping.ToDomainRecurrence(mr),
		CategoryName: categoryName,
	}, nil
}

// FindBudgetByCategoryID retrieves the active budget and its recurrence for a category.
func (r *SQLiteBudgetRepository) FindBudgetByCategoryID(ctx context.Context, categoryID int64) (*domain.BudgetWithRecurrence, error) {
	query := budgetJoin + `WHERE b.category_id = ?;`
	row := r.DB.QueryRowContext(ctx, query, categoryID)
	bwr, err := scanBudgetWithRecurrence(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no budget for category %d", apperrors.ErrNotFound, categoryID)
		}
		return nil, fmt.Errorf("failed to find budget for category %d: %w", categoryID, err)
	}
	return &bwr, nil
}

// ListBudgets retrieves every budget with its recurrence and category name.
func (r *SQLiteBudgetRepository) ListBudgets(ctx context.Context) ([]domain.BudgetWithRecurrence, error) {
	query := budgetJoin + `ORDER BY c.name;`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []domain.BudgetWithRecurrence
	for rows.Next() {
		bwr, err := scanBudgetWithRecurrence(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, bwr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}
	return budgets, nil
}

// SaveBudget persists a new recurrence and budget in one database transaction.
func (r *SQLiteBudgetRepository) SaveBudget(ctx context.Context, categoryID int64, unit domain.RecurrenceUnit, frequency int64, limit decimal.Decimal) (*domain.BudgetWithRecurrence, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(tx)

	res, err := tx.ExecContext(ctx,
		`INSERT INTO recurrences (category_id, unit, frequency) VALUES (?, ?, ?);`,
		categoryID, string(unit), frequency,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save recurrence for category %d: %w", categoryID, err)
	}
	recurrenceID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new recurrence ID: %w", err)
	}

	res, err = tx.ExecContext(ctx,
		`INSERT INTO budgets (category_id, recurrence_id, limit_amount) VALUES (?, ?, ?);`,
		categoryID, recurrenceID, limit.String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: category %d already has a budget", apperrors.ErrDuplicate, categoryID)
		}
		return nil, fmt.Errorf("failed to save budget for category %d: %w", categoryID, err)
	}
	budgetID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new budget ID: %w", err)
	}

	var categoryName string
	if err := tx.QueryRowContext(ctx,
		`SELECT name FROM categories WHERE category_id = ?;`, categoryID,
	).Scan(&categoryName); err != nil {
		return nil, fmt.Errorf("failed to resolve category %d name: %w", categoryID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit budget for category %d: %w", categoryID, err)
	}

	return &domain.BudgetWithRecurrence{
		Budget: domain.Budget{
			BudgetID:     budgetID,
			CategoryID:   categoryID,
			RecurrenceID: recurrenceID,
			Limit:        limit,
		},
		Recurrence: domain.Recurrence{
			RecurrenceID: recurrenceID,
			CategoryID:   categoryID,
			Unit:         unit,
			Frequency:    frequency,
		},
		CategoryName: categoryName,
	}, nil
}

// UpdateBudget rewrites the budget's limit and recurrence in one database transaction.
func (r *SQLiteBudgetRepository) UpdateBudget(ctx context.Context, budgetID int64, unit domain.RecurrenceUnit, frequency int64, limit decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(tx)

	res, err := tx.ExecContext(ctx,
		`UPDATE budgets SET limit_amount = ? WHERE budget_id = ?;`,
		limit.String(), budgetID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %d: %w", budgetID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read budget update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: budget %d", apperrors.ErrNotFound, budgetID)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE recurrences SET unit = ?, frequency = ?
		 WHERE recurrence_id = (SELECT recurrence_id FROM budgets WHERE budget_id = ?);`,
		string(unit), frequency, budgetID,
	); err != nil {
		return fmt.Errorf("failed to update recurrence of budget %d: %w", budgetID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit budget %d update: %w", budgetID, err)
	}
	return nil
}

// DeleteBudgetByCategoryID removes the budget and its recurrence in one
// database transaction. Returns false when the category had no budget.
func (r *SQLiteBudgetRepository) DeleteBudgetByCategoryID(ctx context.Context, categoryID int64) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(tx)

	res, err := tx.ExecContext(ctx, `DELETE FROM budgets WHERE category_id = ?;`, categoryID)
	if err != nil {
		return false, fmt.Errorf("failed to delete budget for category %d: %w", categoryID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read budget delete result: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM recurrences WHERE category_id = ?;`, categoryID); err != nil {
		return false, fmt.Errorf("failed to delete recurrence for category %d: %w", categoryID, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit budget deletion for category %d: %w", categoryID, err)
	}
	return true, nil
}
