package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one row of a monthly statement. A master line (a split
// parent) is immediately followed by its child lines.
type StatementLine struct {
	TransactionID int64           `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryName  string          `json:"categoryName"` // Empty when unclassified
	Note          string          `json:"note"`
	IsMaster      bool            `json:"isMaster"`
	IsChild       bool            `json:"isChild"`
}

// StatementEntry is the raw joined shape the reporting repository returns
// for a month: a transaction with its optional classification, note and
// split relation. The reporting service orders these into StatementLines.
type StatementEntry struct {
	Transaction
	CategoryName string // Empty when unclassified
	Note         string
	ParentID     *int64 // Set when this entry is a child
	HasChildren  bool   // True when this entry is a master
}

// OutflowRow is one outflow transaction with its category name (empty when
// unclassified). Aggregation happens in the service with exact decimals.
type OutflowRow struct {
	CategoryName string
	Amount       decimal.Decimal
}

// CategoryTotal is one row of a category summary: the summed outflow for a
// category within the reporting month.
type CategoryTotal struct {
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// BudgetLine is one row of a budget summary, with the limit normalized to
// the requested display unit.
type BudgetLine struct {
	CategoryName    string          `json:"categoryName"`
	Unit            RecurrenceUnit  `json:"unit"`      // Original unit
	Frequency       int64           `json:"frequency"` // Original frequency
	Limit           decimal.Decimal `json:"limit"`     // Original limit
	NormalizedLimit decimal.Decimal `json:"normalizedLimit"`
}
