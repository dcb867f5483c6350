package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RecurrenceUnit is the closed calendar-unit enumeration for budgets.
type RecurrenceUnit string

const (
	Day   RecurrenceUnit = "day"
	Week  RecurrenceUnit = "week"
	Month RecurrenceUnit = "month"
	Year  RecurrenceUnit = "year"
)

// daysPerUnit is the fixed calendar-approximation ratio table used for
// normalizing budget limits between units. It is deliberately approximate
// (a month is taken as 30 days, a year as 365) and must stay consistent:
// every conversion in the system goes through this table.
var daysPerUnit = map[RecurrenceUnit]decimal.Decimal{
	Day:   decimal.NewFromInt(1),
	Week:  decimal.NewFromInt(7),
	Month: decimal.NewFromInt(30),
	Year:  decimal.NewFromInt(365),
}

// ParseRecurrenceUnit validates a unit name against the closed enumeration.
func ParseRecurrenceUnit(s string) (RecurrenceUnit, error) {
	switch RecurrenceUnit(s) {
	case Day, Week, Month, Year:
		return RecurrenceUnit(s), nil
	default:
		return "", fmt.Errorf("unknown recurrence unit %q", s)
	}
}

// Days returns the approximate day count of one recurrence unit.
func (u RecurrenceUnit) Days() decimal.Decimal {
	return daysPerUnit[u]
}

// NormalizeLimit converts a limit defined as "amount per frequency units" to
// the equivalent amount per one target unit, through the day-count table.
// Converting 100/week to months yields 100 * 30 / 7.
func NormalizeLimit(limit decimal.Decimal, unit RecurrenceUnit, frequency int64, target RecurrenceUnit) decimal.Decimal {
	perDay := limit.Div(unit.Days().Mul(decimal.NewFromInt(frequency)))
	return perDay.Mul(target.Days())
}

// Recurrence describes how often a budget limit applies: every Frequency Units.
type Recurrence struct {
	RecurrenceID int64          `json:"recurrenceID"`
	CategoryID   int64          `json:"categoryID"`
	Unit         RecurrenceUnit `json:"unit"`
	Frequency    int64          `json:"frequency"`
}

// Budget is a per-category spending limit at some recurrence. A category has
// at most one active budget, and a budget never exists without its recurrence.
type Budget struct {
	BudgetID     int64           `json:"budgetID"`
	CategoryID   int64           `json:"categoryID"`
	RecurrenceID int64           `json:"recurrenceID"`
	Limit        decimal.Decimal `json:"limit"`
}

// BudgetWithRecurrence joins a budget with its recurrence and category name,
// the shape budget listings work with.
type BudgetWithRecurrence struct {
	Budget
	Recurrence   Recurrence
	CategoryName string
}
