package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRecord is the normalized shape every statement-source adapter
// must produce: one record per statement line. Positive amounts are inflows,
// negative amounts outflows. A record missing a required field invalidates
// the entire batch.
type StatementRecord struct {
	Date        time.Time       `validate:"required"`
	Description string          `validate:"required"`
	Amount      decimal.Decimal `validate:"required"`
}

// ImportResult reports the outcome of one import run. Duplicates are
// expected and counted, never raised.
type ImportResult struct {
	BatchID  string `json:"batchID"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
}
