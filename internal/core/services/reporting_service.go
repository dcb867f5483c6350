package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_ledger_app/internal/logging"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel is the pseudo-category under which unclassified outflows
// are reported. It sorts last regardless of alphabet.
const UncategorizedLabel = "uncategorized"

// ReportingService computes the monthly read-only views. All aggregation
// happens here with exact decimals; the repository only returns rows.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepository
	budgetRepo    portsrepo.BudgetRepositoryFacade
}

func NewReportingService(reportingRepo portsrepo.ReportingRepository, budgetRepo portsrepo.BudgetRepositoryFacade) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo, budgetRepo: budgetRepo}
}

// monthRange returns the half-open [first of month, first of next month).
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// MonthlyBalance sums the signed amounts of the month's transactions. Split
// parents are excluded so no money is counted twice.
func (s *ReportingService) MonthlyBalance(ctx context.Context, year int, month time.Month) (decimal.Decimal, error) {
	logger := logging.FromCtx(ctx)

	from, to := monthRange(year, month)
	amounts, err := s.reportingRepo.ListMonthAmounts(ctx, from, to)
	if err != nil {
		logger.Error("Failed to load month amounts", slog.String("error", err.Error()))
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total, nil
}

// MonthlyStatement renders the month's transactions in statement order: date
// then identifier, with each split parent immediately followed by its children.
func (s *ReportingService) MonthlyStatement(ctx context.Context, year int, month time.Month) ([]domain.StatementLine, error) {
	logger := logging.FromCtx(ctx)

	from, to := monthRange(year, month)
	entries, err := s.reportingRepo.ListMonthEntries(ctx, from, to)
	if err != nil {
		logger.Error("Failed to load month entries", slog.String("error", err.Error()))
		return nil, err
	}

	childrenOf := make(map[int64][]domain.StatementEntry)
	for _, e := range entries {
		if e.ParentID != nil {
			childrenOf[*e.ParentID] = append(childrenOf[*e.ParentID], e)
		}
	}

	toLine := func(e domain.StatementEntry) domain.StatementLine {
		return domain.StatementLine{
			TransactionID: e.TransactionID,
			Date:          e.Date,
			Description:   e.Description,
			Amount:        e.Amount,
			CategoryName:  e.CategoryName,
			Note:          e.Note,
			IsMaster:      e.HasChildren,
			IsChild:       e.ParentID != nil,
		}
	}

	lines := make([]domain.StatementLine, 0, len(entries))
	for _, e := range entries {
		if e.ParentID != nil {
			continue // Rendered under its parent
		}
		lines = append(lines, toLine(e))
		for _, child := range childrenOf[e.TransactionID] {
			lines = append(lines, toLine(child))
		}
	}
	return lines, nil
}

// CategorySummary sums the month's outflows per category. Totals are reported
// as positive magnitudes, categories come alphabetically, and unclassified
// spending is gathered under UncategorizedLabel at the end.
func (s *ReportingService) CategorySummary(ctx context.Context, year int, month time.Month) ([]domain.CategoryTotal, error) {
	logger := logging.FromCtx(ctx)

	from, to := monthRange(year, month)
	outflows, err := s.reportingRepo.ListMonthOutflows(ctx, from, to)
	if err != nil {
		logger.Error("Failed to load month outflows", slog.String("error", err.Error()))
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, row := range outflows {
		name := row.CategoryName
		if name == "" {
			name = UncategorizedLabel
		}
		totals[name] = totals[name].Add(row.Amount.Abs())
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		if name != UncategorizedLabel {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := totals[UncategorizedLabel]; ok {
		names = append(names, UncategorizedLabel)
	}

	summary := make([]domain.CategoryTotal, 0, len(names))
	for _, name := range names {
		summary = append(summary, domain.CategoryTotal{CategoryName: name, Total: totals[name]})
	}
	return summary, nil
}

// BudgetSummary lists every budget with its limit normalized to the requested
// display unit, ordered by category name.
func (s *ReportingService) BudgetSummary(ctx context.Context, displayUnit string) ([]domain.BudgetLine, error) {
	logger := logging.FromCtx(ctx)

	target, err := domain.ParseRecurrenceUnit(displayUnit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		logger.Error("Failed to list budgets", slog.String("error", err.Error()))
		return nil, err
	}

	lines := make([]domain.BudgetLine, 0, len(budgets))
	for _, b := range budgets {
		lines = append(lines, domain.BudgetLine{
			CategoryName:    b.CategoryName,
			Unit:            b.Recurrence.Unit,
			Frequency:       b.Recurrence.Frequency,
			Limit:           b.Limit,
			NormalizedLimit: domain.NormalizeLimit(b.Limit, b.Recurrence.Unit, b.Recurrence.Frequency, target),
		})
	}
	return lines, nil
}
