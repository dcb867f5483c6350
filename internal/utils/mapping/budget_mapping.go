package mapping

import (
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/SscSPs/personal_ledger_app/internal/models"
)

// ToDomainRecurrence converts a model Recurrence to a domain Recurrence
func ToDomainRecurrence(m models.Recurrence) domain.Recurrence {
	return domain.Recurrence{
		RecurrenceID: m.RecurrenceID,
		CategoryID:   m.CategoryID,
		Unit:         domain.RecurrenceUnit(m.Unit),
		Frequency:    m.Frequency,
	}
}

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:     m.BudgetID,
		CategoryID:   m.CategoryID,
		RecurrenceID: m.RecurrenceID,
		Limit:        m.LimitAmount,
	}
}
