package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_ledger_app/internal/models"
	"github.com/SscSPs/personal_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type SQLiteReportingRepository struct {
	BaseRepository
}

// newSQLiteReportingRepository creates a new repository for reporting queries.
func newSQLiteReportingRepository(db *sql.DB) portsrepo.ReportingRepository {
	return &SQLiteReportingRepository{BaseRepository{DB: db}}
}

// Ensure SQLiteReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*SQLiteReportingRepository)(nil)

// notMaster excludes split parents: their amounts are fully represented by
// their children, so counting both would double the money.
const notMaster = `t.transaction_id NOT IN (SELECT parent_transaction_id FROM transaction_links)`

// ListMonthAmounts returns the signed amounts of all non-master transactions
// dated within [from, to). Summation happens in the caller with exact decimals.
func (r *SQLiteReportingRepository) ListMonthAmounts(ctx context.Context, from, to time.Time) ([]decimal.Decimal, error) {
	query := `
		SELECT t.amount
		FROM transactions t
		WHERE t.txn_date >= ? AND t.txn_date < ?
		  AND ` + notMaster + `;
	`
	rows, err := r.DB.QueryContext(ctx, query, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("failed to query month amounts: %w", err)
	}
	defer rows.Close()

	var amounts []decimal.Decimal
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan amount row: %w", err)
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed stored amount %q: %v", apperrors.ErrInternal, raw, err)
		}
		amounts = append(amounts, amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating amount rows: %w", err)
	}
	return amounts, nil
}

// ListMonthEntries returns every transaction dated within [from, to) joined
// with its classification, note and split relation, ordered by date then
// identifier. Masters are included here; presentation decides how to render them.
func (r *SQLiteReportingRepository) ListMonthEntries(ctx context.Context, from, to time.Time) ([]domain.StatementEntry, error) {
	query := `
		SELECT t.transaction_id, t.hash, t.description, t.txn_date, t.amount, t.direction, t.account_id, t.created_at,
		       c.name,
		       a.note,
		       l.parent_transaction_id,
		       (SELECT COUNT(*) FROM transaction_links lc WHERE lc.parent_transaction_id = t.transaction_id)
		FROM transactions t
		LEFT JOIN classifications cl ON cl.transaction_id = t.transaction_id
		LEFT JOIN categories c ON c.category_id = cl.category_id
		LEFT JOIN annotations a ON a.transaction_id = t.transaction_id
		LEFT JOIN transaction_links l ON l.child_transaction_id = t.transaction_id
		WHERE t.txn_date >= ? AND t.txn_date < ?
		ORDER BY t.txn_date, t.transaction_id;
	`
	rows, err := r.DB.QueryContext(ctx, query, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("failed to query month entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.StatementEntry
	for rows.Next() {
		var m models.StatementRow
		var txnDate, amount, createdAt string
		if err := rows.Scan(
			&m.TransactionID,
			&m.Hash,
			&m.Description,
			&txnDate,
			&amount,
			&m.Direction,
			&m.AccountID,
			&createdAt,
			&m.CategoryName,
			&m.Note,
			&m.ParentID,
			&m.ChildCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan statement row: %w", err)
		}
		if m.Date, err = parseDate(txnDate); err != nil {
			return nil, err
		}
		if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		if err := m.Amount.Scan(amount); err != nil {
			return nil, fmt.Errorf("%w: malformed stored amount %q: %v", apperrors.ErrInternal, amount, err)
		}

		entry := domain.StatementEntry{
			Transaction:  mapping.ToDomainTransaction(m.Transaction),
			CategoryName: m.CategoryName.String,
			Note:         m.Note.String,
			HasChildren:  m.ChildCount > 0,
		}
		if m.ParentID.Valid {
			parentID := m.ParentID.Int64
			entry.ParentID = &parentID
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating statement rows: %w", err)
	}
	return entries, nil
}

// ListMonthOutflows returns the outflow rows of non-master transactions dated
// within [from, to) with their category names (empty when unclassified).
func (r *SQLiteReportingRepository) ListMonthOutflows(ctx context.Context, from, to time.Time) ([]domain.OutflowRow, error) {
	query := `
		SELECT COALESCE(c.name, ''), t.amount
		FROM transactions t
		LEFT JOIN classifications cl ON cl.transaction_id = t.transaction_id
		LEFT JOIN categories c ON c.category_id = cl.category_id
		WHERE t.txn_date >= ? AND t.txn_date < ?
		  AND t.direction = 'OUTFLOW'
		  AND ` + notMaster + `;
	`
	rows, err := r.DB.QueryContext(ctx, query, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("failed to query month outflows: %w", err)
	}
	defer rows.Close()

	var outflows []domain.OutflowRow
	for rows.Next() {
		var row domain.OutflowRow
		var raw string
		if err := rows.Scan(&row.CategoryName, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan outflow row: %w", err)
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed stored amount %q: %v", apperrors.ErrInternal, raw, err)
		}
		row.Amount = amount
		outflows = append(outflows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outflow rows: %w", err)
	}
	return outflows, nil
}
