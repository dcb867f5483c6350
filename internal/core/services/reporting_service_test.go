package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/SscSPs/personal_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	reportingRepo *MockReportingRepository
	budgetRepo    *MockBudgetRepository
	service       *services.ReportingService
	from, to      time.Time
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.reportingRepo = new(MockReportingRepository)
	s.budgetRepo = new(MockBudgetRepository)
	s.service = services.NewReportingService(s.reportingRepo, s.budgetRepo)
	s.from = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.to = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func (s *ReportingServiceTestSuite) TestMonthlyBalance_SumsSignedAmounts() {
	s.reportingRepo.On("ListMonthAmounts", s.ctx, s.from, s.to).
		Return([]decimal.Decimal{dec("2500.00"), dec("-800.00"), dec("-12.50")}, nil)

	balance, err := s.service.MonthlyBalance(s.ctx, 2026, time.March)
	s.Require().NoError(err)
	s.True(balance.Equal(dec("1687.50")), "got %s", balance)
}

func (s *ReportingServiceTestSuite) TestMonthlyBalance_EmptyMonthIsZero() {
	s.reportingRepo.On("ListMonthAmounts", s.ctx, s.from, s.to).
		Return([]decimal.Decimal{}, nil)

	balance, err := s.service.MonthlyBalance(s.ctx, 2026, time.March)
	s.Require().NoError(err)
	s.True(balance.IsZero())
}

func (s *ReportingServiceTestSuite) TestMonthlyStatement_ChildrenFollowTheirMaster() {
	parentID := int64(1)
	entries := []domain.StatementEntry{
		{
			Transaction: domain.Transaction{
				TransactionID: 1,
				Description:   "supermarket",
				Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				Amount:        dec("-50.00"),
			},
			HasChildren: true,
		},
		{
			Transaction: domain.Transaction{
				TransactionID: 2,
				Description:   "salary",
				Date:          time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC),
				Amount:        dec("2500.00"),
			},
			CategoryName: "Salary",
		},
		// Children come back in date/id order, interleaved with everything else.
		{
			Transaction: domain.Transaction{
				TransactionID: 3,
				Description:   "food",
				Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				Amount:        dec("-30.00"),
			},
			ParentID: &parentID,
		},
		{
			Transaction: domain.Transaction{
				TransactionID: 4,
				Description:   "household",
				Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				Amount:        dec("-20.00"),
			},
			ParentID: &parentID,
			Note:     "cleaning supplies",
		},
	}
	s.reportingRepo.On("ListMonthEntries", s.ctx, s.from, s.to).Return(entries, nil)

	lines, err := s.service.MonthlyStatement(s.ctx, 2026, time.March)
	s.Require().NoError(err)
	s.Require().Len(lines, 4)

	// Master first, its children directly after it, then the rest.
	s.EqualValues(1, lines[0].TransactionID)
	s.True(lines[0].IsMaster)
	s.False(lines[0].IsChild)

	s.EqualValues(3, lines[1].TransactionID)
	s.True(lines[1].IsChild)
	s.EqualValues(4, lines[2].TransactionID)
	s.True(lines[2].IsChild)
	s.Equal("cleaning supplies", lines[2].Note)

	s.EqualValues(2, lines[3].TransactionID)
	s.Equal("Salary", lines[3].CategoryName)
}

func (s *ReportingServiceTestSuite) TestCategorySummary_AlphabeticalWithUncategorizedLast() {
	s.reportingRepo.On("ListMonthOutflows", s.ctx, s.from, s.to).Return([]domain.OutflowRow{
		{CategoryName: "Transport", Amount: dec("-30.00")},
		{CategoryName: "Groceries", Amount: dec("-50.00")},
		{CategoryName: "", Amount: dec("-10.00")},
		{CategoryName: "Groceries", Amount: dec("-25.00")},
	}, nil)

	summary, err := s.service.CategorySummary(s.ctx, 2026, time.March)
	s.Require().NoError(err)
	s.Require().Len(summary, 3)

	s.Equal("Groceries", summary[0].CategoryName)
	s.True(summary[0].Total.Equal(dec("75.00")))
	s.Equal("Transport", summary[1].CategoryName)
	s.True(summary[1].Total.Equal(dec("30.00")))
	s.Equal(services.UncategorizedLabel, summary[2].CategoryName)
	s.True(summary[2].Total.Equal(dec("10.00")))
}

func (s *ReportingServiceTestSuite) TestBudgetSummary_NormalizesToDisplayUnit() {
	s.budgetRepo.On("ListBudgets", s.ctx).Return([]domain.BudgetWithRecurrence{
		{
			Budget:       domain.Budget{Limit: dec("100")},
			Recurrence:   domain.Recurrence{Unit: domain.Week, Frequency: 1},
			CategoryName: "Groceries",
		},
		{
			Budget:       domain.Budget{Limit: dec("600")},
			Recurrence:   domain.Recurrence{Unit: domain.Month, Frequency: 1},
			CategoryName: "Rent",
		},
	}, nil)

	lines, err := s.service.BudgetSummary(s.ctx, "month")
	s.Require().NoError(err)
	s.Require().Len(lines, 2)

	// 100/week to months: 100 * 30 / 7.
	s.True(lines[0].NormalizedLimit.Round(2).Equal(dec("428.57")), "got %s", lines[0].NormalizedLimit)
	// A month-unit budget maps onto itself.
	s.True(lines[1].NormalizedLimit.Equal(dec("600")))
}

func (s *ReportingServiceTestSuite) TestBudgetSummary_RoundTripThroughUnits() {
	s.budgetRepo.On("ListBudgets", s.ctx).Return([]domain.BudgetWithRecurrence{
		{
			Budget:       domain.Budget{Limit: dec("210")},
			Recurrence:   domain.Recurrence{Unit: domain.Week, Frequency: 3},
			CategoryName: "Dining",
		},
	}, nil)

	lines, err := s.service.BudgetSummary(s.ctx, "week")
	s.Require().NoError(err)
	s.Require().Len(lines, 1)

	// 210 per 3 weeks is exactly 70 per week.
	s.True(lines[0].NormalizedLimit.Equal(dec("70")), "got %s", lines[0].NormalizedLimit)
}

func (s *ReportingServiceTestSuite) TestBudgetSummary_UnknownDisplayUnit() {
	_, err := s.service.BudgetSummary(s.ctx, "decade")
	s.ErrorIs(err, apperrors.ErrValidation)
}
