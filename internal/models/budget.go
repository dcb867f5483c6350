package models

import "github.com/shopspring/decimal"

// Recurrence is the database row model for a budget recurrence.
type Recurrence struct {
	RecurrenceID int64
	CategoryID   int64
	Unit         string
	Frequency    int64
}

// Budget is the database row model for a per-category spending limit.
type Budget struct {
	BudgetID     int64
	CategoryID   int64
	RecurrenceID int64
	LimitAmount  decimal.Decimal
}
