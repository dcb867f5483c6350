package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database row model for a ledger transaction.
// Amount is stored as exact decimal text; account_id is nullable until the
// transaction is linked to an account.
type Transaction struct {
	TransactionID int64
	Hash          string
	Description   string
	Date          time.Time
	Amount        decimal.Decimal
	Direction     string
	AccountID     sql.NullInt64
	CreatedAt     time.Time
}


// StatementRow is the joined row shape the reporting queries return: a
// month's transaction together with its optional classification, note and
// parent link.
type StatementRow struct {
	Transaction
	CategoryName sql.NullString
	Note         sql.NullString
	ParentID     sql.NullInt64 // Set when this row is a child
	ChildCount   int64         // > 0 when this row is a master
}
