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

type SQLiteAccountRepository struct {
	BaseRepository
}

// newSQLiteAccountRepository creates a new repository for account data.
func newSQLiteAccountRepository(db *sql.DB) portsrepo.AccountRepositoryFacade {
	return &SQLiteAccountRepository{BaseRepository{DB: db}}
}

// Ensure SQLiteAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*SQLiteAccountRepository)(nil)

// SaveAccount inserts a new account and returns its assigned identifier.
func (r *SQLiteAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_number, name, institution, created_at)
		VALUES (?, ?, ?, ?);
	`
	res, err := r.DB.ExecContext(ctx, query,
		modelAcc.AccountNumber,
		modelAcc.Name,
		modelAcc.Institution,
		formatTimestamp(modelAcc.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: account with number %s already exists", apperrors.ErrDuplicate, modelAcc.AccountNumber)
		}
		return 0, fmt.Errorf("failed to save account %s: %w", modelAcc.AccountNumber, err)
	}

	accountID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new account ID: %w", err)
	}
	return accountID, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *SQLiteAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT account_id, account_number, name, institution, created_at
		FROM accounts
		WHERE account_id = ?;
	`
	return r.findAccount(ctx, query, accountID)
}

// FindAccountByNumber retrieves an account by its external account number.
func (r *SQLiteAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `
		SELECT account_id, account_number, name, institution, created_at
		FROM accounts
		WHERE account_number = ?;
	`
	return r.findAccount(ctx, query, accountNumber)
}

func (r *SQLiteAccountRepository) findAccount(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var modelAcc models.Account
	var createdAt string

	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&modelAcc.AccountID,
		&modelAcc.AccountNumber,
		&modelAcc.Name,
		&modelAcc.Institution,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if modelAcc.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// ListAccounts retrieves all accounts ordered by name.
func (r *SQLiteAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT account_id, account_number, name, institution, created_at
		FROM accounts
		ORDER BY name, account_id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var modelAcc models.Account
		var createdAt string
		if err := rows.Scan(
			&modelAcc.AccountID,
			&modelAcc.AccountNumber,
			&modelAcc.Name,
			&modelAcc.Institution,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		if modelAcc.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, mapping.ToDomainAccount(modelAcc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}
