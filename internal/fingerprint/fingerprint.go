// Package fingerprint derives stable content hashes for statement records.
// The hash doubles as the storage-level uniqueness key for transactions, so
// it must be a cryptographic digest, not just an in-memory dedup key.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// canonicalAmount renders an amount with trailing zeros trimmed so that "3.5"
// and "3.50" (the same statement value re-exported with different formatting)
// hash identically. Precision is never reduced: "3.504" stays distinct from
// "3.50", so records differing only below the cent keep different hashes.
func canonicalAmount(amount decimal.Decimal) string {
	return amount.String()
}

// NormalizeDescription case-folds the description and collapses internal
// whitespace so that cosmetic re-exports of the same statement line still
// produce the same hash.
func NormalizeDescription(description string) string {
	folded := foldCaser.String(description)
	return strings.Join(strings.Fields(folded), " ")
}

// Compute returns the content hash of a statement record. Account, date and
// amount are part of the input so that two genuinely different transactions
// sharing a description (repeated small purchases at the same merchant) do
// not collide.
func Compute(accountID int64, date time.Time, amount decimal.Decimal, description string) string {
	input := fmt.Sprintf("%d|%s|%s|%s",
		accountID,
		date.Format("2006-01-02"),
		canonicalAmount(amount),
		NormalizeDescription(description),
	)
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// ComputeChild returns the content hash for a chunk produced by splitting a
// parent transaction. The parent hash and the chunk ordinal are part of the
// input, so children cannot collide with each other, with the parent, or
// with any imported row.
func ComputeChild(parentHash string, ordinal int, amount decimal.Decimal, description string) string {
	input := fmt.Sprintf("%s|%d|%s|%s",
		parentHash,
		ordinal,
		canonicalAmount(amount),
		NormalizeDescription(description),
	)
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
