package domain

import "time"

// CategoryKind distinguishes inflow-categories from outflow-categories.
// The two namespaces never overlap: a name is unique within its kind.
type CategoryKind string

const (
	InflowCategory  CategoryKind = "INFLOW"
	OutflowCategory CategoryKind = "OUTFLOW"
)

// KindForDirection returns the category namespace a transaction belongs to.
func KindForDirection(d Direction) CategoryKind {
	if d == Inflow {
		return InflowCategory
	}
	return OutflowCategory
}

// Category names a bucket of spending or income.
type Category struct {
	CategoryID int64        `json:"categoryID"`
	Kind       CategoryKind `json:"kind"`
	Name       string       `json:"name"` // Unique within its kind, case-insensitive
	CreatedAt  time.Time    `json:"createdAt"`
}

