package dto

import "github.com/shopspring/decimal"

// ChunkInput is one user-supplied piece of a split: the child's amount and
// description. Chunk amounts carry the same sign as the parent and must sum
// to the parent's amount exactly.
type ChunkInput struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}
