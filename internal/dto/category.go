package dto

import "github.com/SscSPs/personal_ledger_app/internal/core/domain"

// AddCategoryResult reports whether a category row was actually created.
// When the name was an exact or near-duplicate of an existing category the
// addition is a no-op and Category holds the survivor.
type AddCategoryResult struct {
	Category domain.Category `json:"category"`
	Created  bool            `json:"created"`
}
