package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newSQLiteAccountRepository(db),
		TransactionRepo: newSQLiteTransactionRepository(db),
		CategoryRepo:    newSQLiteCategoryRepository(db),
		BudgetRepo:      newSQLiteBudgetRepository(db),
		ReportingRepo:   newSQLiteReportingRepository(db),
	}
}
