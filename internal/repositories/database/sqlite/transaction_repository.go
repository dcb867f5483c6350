package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_ledger_app/internal/models"
	"github.com/SscSPs/personal_ledger_app/internal/utils/mapping"
)

type SQLiteTransactionRepository struct {
	BaseRepository
}

// newSQLiteTransactionRepository creates a new repository for transaction data.
func newSQLiteTransactionRepository(db *sql.DB) portsrepo.TransactionRepositoryFacade {
	return &SQLiteTransactionRepository{BaseRepository{DB: db}}
}

// Ensure SQLiteTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*SQLiteTransactionRepository)(nil)

const transactionColumns = `transaction_id, hash, description, txn_date, amount, direction, account_id, created_at`

// scanTransaction reads one transaction row from any scanner (row or rows).
func scanTransaction(scan func(dest ...any) error) (models.Transaction, error) {
	var m models.Transaction
	var txnDate, amount, createdAt string
	if err := scan(
		&m.TransactionID,
		&m.Hash,
		&m.Description,
		&txnDate,
		&amount,
		&m.Direction,
		&m.AccountID,
		&createdAt,
	); err != nil {
		return models.Transaction{}, err
	}
	var err error
	if m.Date, err = parseDate(txnDate); err != nil {
		return models.Transaction{}, err
	}
	if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return models.Transaction{}, err
	}
	if err := m.Amount.Scan(amount); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: malformed stored amount %q: %v", apperrors.ErrInternal, amount, err)
	}
	return m, nil
}

// FindTransactionByID retrieves a transaction by its surrogate key.
func (r *SQLiteTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = ?;
	`
	row := r.DB.QueryRowContext(ctx, query, transactionID)
	m, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %d", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ExistingHashes returns the subset of candidate hashes already present in
// the store. The candidate list is chunked to stay under sqlite's bound
// parameter limit.
func (r *SQLiteTransactionRepository) ExistingHashes(ctx context.Context, hashes []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{})
	if len(hashes) == 0 {
		return existing, nil
	}

	const chunkSize = 500
	for start := 0; start < len(hashes); start += chunkSize {
		end := start + chunkSize
		if end > len(hashes) {
			end = len(hashes)
		}
		chunk := hashes[start:end]

		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(chunk)), ",")
		query := `SELECT hash FROM transactions WHERE hash IN (` + placeholders + `);`

		args := make([]any, len(chunk))
		for i, h := range chunk {
			args[i] = h
		}

		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query existing hashes: %w", err)
		}
		for rows.Next() {
			var h string
			if err := rows.Scan(&h); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan hash row: %w", err)
			}
			existing[h] = struct{}{}
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("error iterating hash rows: %w", err)
		}
		rows.Close()
	}
	return existing, nil
}

// HasChildren reports whether the transaction is a master record.
func (r *SQLiteTransactionRepository) HasChildren(ctx context.Context, transactionID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM transaction_links WHERE parent_transaction_id = ?);`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, transactionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check children of transaction %d: %w", transactionID, err)
	}
	return exists, nil
}

// IsChild reports whether the transaction was produced by a split.
func (r *SQLiteTransactionRepository) IsChild(ctx context.Context, transactionID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM transaction_links WHERE child_transaction_id = ?);`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, transactionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check parentage of transaction %d: %w", transactionID, err)
	}
	return exists, nil
}

// BulkInsertTransactions inserts all given transactions in a single database
// transaction. A uniqueness violation on any row aborts the whole batch.
func (r *SQLiteTransactionRepository) BulkInsertTransactions(ctx context.Context, transactions []domain.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(tx)

	if err := insertTransactions(ctx, tx, transactions, nil); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction batch: %w", err)
	}
	return len(transactions), nil
}

// insertTransactions writes the given transactions inside tx. When ids is
// non-nil it receives the assigned identifiers in input order.
func insertTransactions(ctx context.Context, tx *sql.Tx, transactions []domain.Transaction, ids []int64) error {
	query := `
		INSERT INTO transactions (hash, description, txn_date, amount, direction, account_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare transaction insert: %w", err)
	}
	defer stmt.Close()

	for i, d := range transactions {
		m := mapping.ToModelTransaction(d)
		res, err := stmt.ExecContext(ctx,
			m.Hash,
			m.Description,
			formatDate(m.Date),
			m.Amount.String(),
			m.Direction,
			m.AccountID,
			formatTimestamp(m.CreatedAt),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: transaction with hash %s already exists", apperrors.ErrDuplicate, m.Hash)
			}
			return fmt.Errorf("failed to insert transaction %s: %w", m.Hash, err)
		}
		if ids != nil {
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read new transaction ID: %w", err)
			}
			ids[i] = id
		}
	}
	return nil
}

// SaveSplit persists the children of a split and one parent/child link per
// child in a single database transaction. The re-split guard is re-checked
// inside the transaction so a concurrent split cannot slip in between the
// service's staging check and the commit.
func (r *SQLiteTransactionRepository) SaveSplit(ctx context.Context, parentID int64, children []domain.Transaction) ([]domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(tx)

	var alreadySplit bool
	guard := `SELECT EXISTS (SELECT 1 FROM transaction_links WHERE parent_transaction_id = ?);`
	if err := tx.QueryRowContext(ctx, guard, parentID).Scan(&alreadySplit); err != nil {
		return nil, fmt.Errorf("failed to check split state of transaction %d: %w", parentID, err)
	}
	if alreadySplit {
		return nil, fmt.Errorf("%w: transaction %d is already split", apperrors.ErrConflict, parentID)
	}

	ids := make([]int64, len(children))
	if err := insertTransactions(ctx, tx, children, ids); err != nil {
		return nil, err
	}

	linkQuery := `
		INSERT INTO transaction_links (child_transaction_id, parent_transaction_id)
		VALUES (?, ?);
	`
	linkStmt, err := tx.PrepareContext(ctx, linkQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare link insert: %w", err)
	}
	defer linkStmt.Close()

	saved := make([]domain.Transaction, len(children))
	for i, child := range children {
		if _, err := linkStmt.ExecContext(ctx, ids[i], parentID); err != nil {
			return nil, fmt.Errorf("failed to link child %d to parent %d: %w", ids[i], parentID, err)
		}
		child.TransactionID = ids[i]
		saved[i] = child
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit split of transaction %d: %w", parentID, err)
	}
	return saved, nil
}

// UpsertAnnotation replaces the transaction's free-text note.
func (r *SQLiteTransactionRepository) UpsertAnnotation(ctx context.Context, transactionID int64, note string) error {
	query := `
		INSERT INTO annotations (transaction_id, note)
		VALUES (?, ?)
		ON CONFLICT (transaction_id) DO UPDATE SET note = excluded.note;
	`
	if _, err := r.DB.ExecContext(ctx, query, transactionID, note); err != nil {
		return fmt.Errorf("failed to annotate transaction %d: %w", transactionID, err)
	}
	return nil
}

// LinkAccount attaches a transaction to an account.
func (r *SQLiteTransactionRepository) LinkAccount(ctx context.Context, transactionID int64, accountID int64) error {
	query := `UPDATE transactions SET account_id = ? WHERE transaction_id = ?;`
	res, err := r.DB.ExecContext(ctx, query, accountID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to link transaction %d to account %d: %w", transactionID, accountID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read link result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %d", apperrors.ErrNotFound, transactionID)
	}
	return nil
}
