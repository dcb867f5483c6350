package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ExistingHashes(ctx context.Context, hashes []string) (map[string]struct{}, error) {
	args := m.Called(ctx, hashes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]struct{}), args.Error(1)
}

func (m *MockTransactionRepository) HasChildren(ctx context.Context, transactionID int64) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) IsChild(ctx context.Context, transactionID int64) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) BulkInsertTransactions(ctx context.Context, transactions []domain.Transaction) (int, error) {
	args := m.Called(ctx, transactions)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) SaveSplit(ctx context.Context, parentID int64, children []domain.Transaction) ([]domain.Transaction, error) {
	args := m.Called(ctx, parentID, children)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpsertAnnotation(ctx context.Context, transactionID int64, note string) error {
	args := m.Called(ctx, transactionID, note)
	return args.Error(0)
}

func (m *MockTransactionRepository) LinkAccount(ctx context.Context, transactionID int64, accountID int64) error {
	args := m.Called(ctx, transactionID, accountID)
	return args.Error(0)
}

// MockCategoryRepository is a mock type for the CategoryRepositoryFacade interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, kind domain.CategoryKind, name string) (*domain.Category, error) {
	args := m.Called(ctx, kind, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByKind(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) RenameCategory(ctx context.Context, categoryID int64, newName string) error {
	args := m.Called(ctx, categoryID, newName)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategoryCascade(ctx context.Context, categoryID int64) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpsertClassification(ctx context.Context, transactionID int64, categoryID int64) error {
	args := m.Called(ctx, transactionID, categoryID)
	return args.Error(0)
}

// MockBudgetRepository is a mock type for the BudgetRepositoryFacade interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByCategoryID(ctx context.Context, categoryID int64) (*domain.BudgetWithRecurrence, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetWithRecurrence), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context) ([]domain.BudgetWithRecurrence, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetWithRecurrence), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, categoryID int64, unit domain.RecurrenceUnit, frequency int64, limit decimal.Decimal) (*domain.BudgetWithRecurrence, error) {
	args := m.Called(ctx, categoryID, unit, frequency, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetWithRecurrence), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budgetID int64, unit domain.RecurrenceUnit, frequency int64, limit decimal.Decimal) error {
	args := m.Called(ctx, budgetID, unit, frequency, limit)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudgetByCategoryID(ctx context.Context, categoryID int64) (bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Bool(0), args.Error(1)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) ListMonthAmounts(ctx context.Context, from, to time.Time) ([]decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) ListMonthEntries(ctx context.Context, from, to time.Time) ([]domain.StatementEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementEntry), args.Error(1)
}

func (m *MockReportingRepository) ListMonthOutflows(ctx context.Context, from, to time.Time) ([]domain.OutflowRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OutflowRow), args.Error(1)
}
