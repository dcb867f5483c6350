package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether a transaction moves money into or out of the ledger.
type Direction string

const (
	Inflow  Direction = "INFLOW"
	Outflow Direction = "OUTFLOW"
)

// DirectionOf derives the direction from a signed amount.
// Positive amounts are inflows, negative amounts outflows.
func DirectionOf(amount decimal.Decimal) Direction {
	if amount.IsNegative() {
		return Outflow
	}
	return Inflow
}

// Transaction is a single ledger row, created either by the import pipeline
// or by the chunk engine (children). The hash is the content fingerprint of
// the statement line and is unique at the store boundary: two transactions
// with the same hash are definitionally the same statement line.
type Transaction struct {
	TransactionID int64           `json:"transactionID"`
	Hash          string          `json:"hash"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"` // Signed; negative = outflow
	Direction     Direction       `json:"direction"`
	AccountID     *int64          `json:"accountID"` // Nullable until linked
	CreatedAt     time.Time       `json:"createdAt"`
}
