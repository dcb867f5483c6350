package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the read-only queries behind reports.
// Master (split-committed parent) transactions are excluded from the amount
// queries; their children are included. Amounts come back as exact decimals
// and are aggregated in the service, never with SQL SUM over decimal text.
type ReportingRepository interface {
	// ListMonthAmounts returns the signed amounts of all non-master
	// transactions dated within [from, to).
	ListMonthAmounts(ctx context.Context, from, to time.Time) ([]decimal.Decimal, error)

	// ListMonthEntries returns every transaction dated within [from, to)
	// joined with its classification, note and split relation, ordered by
	// date then identifier.
	ListMonthEntries(ctx context.Context, from, to time.Time) ([]domain.StatementEntry, error)

	// ListMonthOutflows returns the outflow rows of non-master transactions
	// dated within [from, to) with their category names.
	ListMonthOutflows(ctx context.Context, from, to time.Time) ([]domain.OutflowRow, error)
}
