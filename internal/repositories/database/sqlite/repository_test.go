package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	repo "github.com/SscSPs/personal_ledger_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/personal_ledger_app/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs every repository against a real migrated database
// file, one fresh file per test.
type RepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	path := filepath.Join(s.T().TempDir(), "ledger.db")
	db, err := database.NewSQLiteDB(s.ctx, path)
	s.Require().NoError(err)
	s.T().Cleanup(func() { db.Close() })

	s.Require().NoError(database.Migrate(db))
	s.repos = repo.NewRepositoryProvider(db)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

// newTxn builds an unsaved transaction with a hash derived from the
// description, good enough for uniqueness at the store boundary.
func newTxn(hash, description string, date time.Time, amount string) domain.Transaction {
	amt := decimal.RequireFromString(amount)
	return domain.Transaction{
		Hash:        hash,
		Description: description,
		Date:        date,
		Amount:      amt,
		Direction:   domain.DirectionOf(amt),
		CreatedAt:   time.Now(),
	}
}

func (s *RepositoryTestSuite) mustInsert(txns ...domain.Transaction) []domain.Transaction {
	n, err := s.repos.TransactionRepo.BulkInsertTransactions(s.ctx, txns)
	s.Require().NoError(err)
	s.Require().Equal(len(txns), n)

	saved := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		hashes, err := s.repos.TransactionRepo.ExistingHashes(s.ctx, []string{t.Hash})
		s.Require().NoError(err)
		s.Require().Contains(hashes, t.Hash)
		saved = append(saved, t)
	}
	return saved
}

func (s *RepositoryTestSuite) mustCategory(kind domain.CategoryKind, name string) int64 {
	id, err := s.repos.CategoryRepo.SaveCategory(s.ctx, domain.Category{
		Kind:      kind,
		Name:      name,
		CreatedAt: time.Now(),
	})
	s.Require().NoError(err)
	return id
}

// --- Accounts ---

func (s *RepositoryTestSuite) TestSaveAccount_RoundTrip() {
	id, err := s.repos.AccountRepo.SaveAccount(s.ctx, domain.Account{
		AccountNumber: "NL01BANK0123456789",
		Name:          "Checking",
		Institution:   "Bank",
		CreatedAt:     time.Now(),
	})
	s.Require().NoError(err)

	byID, err := s.repos.AccountRepo.FindAccountByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Checking", byID.Name)

	byNumber, err := s.repos.AccountRepo.FindAccountByNumber(s.ctx, "NL01BANK0123456789")
	s.Require().NoError(err)
	s.Equal(id, byNumber.AccountID)
}

func (s *RepositoryTestSuite) TestSaveAccount_DuplicateNumber() {
	acc := domain.Account{AccountNumber: "ACC-1", Name: "A", CreatedAt: time.Now()}
	_, err := s.repos.AccountRepo.SaveAccount(s.ctx, acc)
	s.Require().NoError(err)

	_, err = s.repos.AccountRepo.SaveAccount(s.ctx, acc)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *RepositoryTestSuite) TestFindAccountByID_NotFound() {
	_, err := s.repos.AccountRepo.FindAccountByID(s.ctx, 999)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Transactions ---

func (s *RepositoryTestSuite) TestBulkInsert_AllOrNothing() {
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	first := newTxn("hash-a", "groceries", date, "-12.50")
	s.mustInsert(first)

	// Second batch contains one fresh row and one duplicate hash: nothing
	// from the batch may persist.
	fresh := newTxn("hash-b", "rent", date, "-800.00")
	dup := newTxn("hash-a", "groceries", date, "-12.50")
	n, err := s.repos.TransactionRepo.BulkInsertTransactions(s.ctx, []domain.Transaction{fresh, dup})
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.Zero(n)

	hashes, err := s.repos.TransactionRepo.ExistingHashes(s.ctx, []string{"hash-a", "hash-b"})
	s.Require().NoError(err)
	s.Contains(hashes, "hash-a")
	s.NotContains(hashes, "hash-b")
}

func (s *RepositoryTestSuite) TestExistingHashes_FiltersToKnown() {
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	s.mustInsert(newTxn("known", "salary", date, "2500.00"))

	existing, err := s.repos.TransactionRepo.ExistingHashes(s.ctx, []string{"known", "unknown"})
	s.Require().NoError(err)
	s.Len(existing, 1)
	s.Contains(existing, "known")
}

func (s *RepositoryTestSuite) TestExistingHashes_EmptyInput() {
	existing, err := s.repos.TransactionRepo.ExistingHashes(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(existing)
}

func (s *RepositoryTestSuite) TestFindTransactionByID_RoundTrip() {
	date := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	s.mustInsert(newTxn("rt", "coffee", date, "-3.50"))

	found, err := s.repos.TransactionRepo.FindTransactionByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("coffee", found.Description)
	s.True(found.Amount.Equal(decimal.RequireFromString("-3.50")))
	s.Equal(domain.Outflow, found.Direction)
	s.True(found.Date.Equal(date))
	s.Nil(found.AccountID)
}

func (s *RepositoryTestSuite) TestSaveSplit_PersistsChildrenAndLinks() {
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	s.mustInsert(newTxn("parent", "supermarket", date, "-50.00"))

	children := []domain.Transaction{
		newTxn("child-1", "food", date, "-30.00"),
		newTxn("child-2", "household", date, "-20.00"),
	}
	saved, err := s.repos.TransactionRepo.SaveSplit(s.ctx, 1, children)
	s.Require().NoError(err)
	s.Require().Len(saved, 2)
	s.NotZero(saved[0].TransactionID)
	s.NotZero(saved[1].TransactionID)

	hasChildren, err := s.repos.TransactionRepo.HasChildren(s.ctx, 1)
	s.Require().NoError(err)
	s.True(hasChildren)

	isChild, err := s.repos.TransactionRepo.IsChild(s.ctx, saved[0].TransactionID)
	s.Require().NoError(err)
	s.True(isChild)
}

func (s *RepositoryTestSuite) TestSaveSplit_ReSplitRejected() {
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	s.mustInsert(newTxn("parent", "supermarket", date, "-50.00"))

	_, err := s.repos.TransactionRepo.SaveSplit(s.ctx, 1, []domain.Transaction{
		newTxn("child-1", "food", date, "-50.00"),
	})
	s.Require().NoError(err)

	_, err = s.repos.TransactionRepo.SaveSplit(s.ctx, 1, []domain.Transaction{
		newTxn("child-other", "again", date, "-50.00"),
	})
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *RepositoryTestSuite) TestSaveSplit_DuplicateChildRollsBackLinks() {
	date := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	s.mustInsert(newTxn("parent", "supermarket", date, "-50.00"))

	_, err := s.repos.TransactionRepo.SaveSplit(s.ctx, 1, []domain.Transaction{
		newTxn("child-ok", "food", date, "-30.00"),
		newTxn("parent", "collides with parent hash", date, "-20.00"),
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	// The failed split must leave the parent whole.
	hasChildren, err := s.repos.TransactionRepo.HasChildren(s.ctx, 1)
	s.Require().NoError(err)
	s.False(hasChildren)
}

func (s *RepositoryTestSuite) TestUpsertAnnotation_Replaces() {
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	s.mustInsert(newTxn("ann", "gift", date, "25.00"))

	s.Require().NoError(s.repos.TransactionRepo.UpsertAnnotation(s.ctx, 1, "birthday"))
	s.Require().NoError(s.repos.TransactionRepo.UpsertAnnotation(s.ctx, 1, "wedding"))

	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	entries, err := s.repos.ReportingRepo.ListMonthEntries(s.ctx, from, to)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("wedding", entries[0].Note)
}

func (s *RepositoryTestSuite) TestLinkAccount() {
	accID, err := s.repos.AccountRepo.SaveAccount(s.ctx, domain.Account{
		AccountNumber: "ACC-9", Name: "Main", CreatedAt: time.Now(),
	})
	s.Require().NoError(err)

	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	s.mustInsert(newTxn("lnk", "transfer", date, "100.00"))

	s.Require().NoError(s.repos.TransactionRepo.LinkAccount(s.ctx, 1, accID))

	found, err := s.repos.TransactionRepo.FindTransactionByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().NotNil(found.AccountID)
	s.Equal(accID, *found.AccountID)

	s.ErrorIs(s.repos.TransactionRepo.LinkAccount(s.ctx, 999, accID), apperrors.ErrNotFound)
}

// --- Categories ---

func (s *RepositoryTestSuite) TestFindCategoryByName_CaseInsensitive() {
	s.mustCategory(domain.OutflowCategory, "Groceries")

	found, err := s.repos.CategoryRepo.FindCategoryByName(s.ctx, domain.OutflowCategory, "gRoCeRiEs")
	s.Require().NoError(err)
	s.Equal("Groceries", found.Name)
}

func (s *RepositoryTestSuite) TestSaveCategory_DuplicateWithinKind() {
	s.mustCategory(domain.OutflowCategory, "Transport")

	_, err := s.repos.CategoryRepo.SaveCategory(s.ctx, domain.Category{
		Kind: domain.OutflowCategory, Name: "transport", CreatedAt: time.Now(),
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	// Same name in the other kind namespace is fine.
	_, err = s.repos.CategoryRepo.SaveCategory(s.ctx, domain.Category{
		Kind: domain.InflowCategory, Name: "Transport", CreatedAt: time.Now(),
	})
	s.NoError(err)
}

func (s *RepositoryTestSuite) TestRenameCategory() {
	id := s.mustCategory(domain.OutflowCategory, "Grocceries")

	s.Require().NoError(s.repos.CategoryRepo.RenameCategory(s.ctx, id, "Groceries"))

	_, err := s.repos.CategoryRepo.FindCategoryByName(s.ctx, domain.OutflowCategory, "Grocceries")
	s.ErrorIs(err, apperrors.ErrNotFound)

	found, err := s.repos.CategoryRepo.FindCategoryByName(s.ctx, domain.OutflowCategory, "Groceries")
	s.Require().NoError(err)
	s.Equal(id, found.CategoryID)
}

func (s *RepositoryTestSuite) TestDeleteCategoryCascade() {
	id := s.mustCategory(domain.OutflowCategory, "Dining")

	date := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	s.mustInsert(newTxn("din", "restaurant", date, "-40.00"))
	s.Require().NoError(s.repos.CategoryRepo.UpsertClassification(s.ctx, 1, id))

	_, err := s.repos.BudgetRepo.SaveBudget(s.ctx, id, domain.Month, 1, decimal.RequireFromString("200"))
	s.Require().NoError(err)

	s.Require().NoError(s.repos.CategoryRepo.DeleteCategoryCascade(s.ctx, id))

	_, err = s.repos.CategoryRepo.FindCategoryByName(s.ctx, domain.OutflowCategory, "Dining")
	s.ErrorIs(err, apperrors.ErrNotFound)

	// The transaction survives, only the classification is gone.
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	entries, err := s.repos.ReportingRepo.ListMonthEntries(s.ctx, from, from.AddDate(0, 1, 0))
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Empty(entries[0].CategoryName)

	// And the budget is gone with its category.
	budgets, err := s.repos.BudgetRepo.ListBudgets(s.ctx)
	s.Require().NoError(err)
	s.Empty(budgets)
}

func (s *RepositoryTestSuite) TestUpsertClassification_Replaces() {
	groceries := s.mustCategory(domain.OutflowCategory, "Groceries")
	dining := s.mustCategory(domain.OutflowCategory, "Dining")

	date := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	s.mustInsert(newTxn("cls", "deli", date, "-15.00"))

	s.Require().NoError(s.repos.CategoryRepo.UpsertClassification(s.ctx, 1, groceries))
	s.Require().NoError(s.repos.CategoryRepo.UpsertClassification(s.ctx, 1, dining))

	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	entries, err := s.repos.ReportingRepo.ListMonthEntries(s.ctx, from, from.AddDate(0, 1, 0))
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("Dining", entries[0].CategoryName)
}

// --- Budgets ---

func (s *RepositoryTestSuite) TestSaveBudget_OnePerCategory() {
	id := s.mustCategory(domain.OutflowCategory, "Groceries")

	bwr, err := s.repos.BudgetRepo.SaveBudget(s.ctx, id, domain.Week, 2, decimal.RequireFromString("150.00"))
	s.Require().NoError(err)
	s.Equal("Groceries", bwr.CategoryName)
	s.Equal(domain.Week, bwr.Recurrence.Unit)
	s.EqualValues(2, bwr.Recurrence.Frequency)

	_, err = s.repos.BudgetRepo.SaveBudget(s.ctx, id, domain.Month, 1, decimal.RequireFromString("600.00"))
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *RepositoryTestSuite) TestUpdateBudget_RewritesLimitAndRecurrence() {
	id := s.mustCategory(domain.OutflowCategory, "Transport")
	bwr, err := s.repos.BudgetRepo.SaveBudget(s.ctx, id, domain.Week, 1, decimal.RequireFromString("50"))
	s.Require().NoError(err)

	s.Require().NoError(s.repos.BudgetRepo.UpdateBudget(s.ctx, bwr.BudgetID, domain.Month, 1, decimal.RequireFromString("200")))

	updated, err := s.repos.BudgetRepo.FindBudgetByCategoryID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.Month, updated.Recurrence.Unit)
	s.True(updated.Limit.Equal(decimal.RequireFromString("200")))
}

func (s *RepositoryTestSuite) TestDeleteBudgetByCategoryID() {
	id := s.mustCategory(domain.OutflowCategory, "Dining")
	_, err := s.repos.BudgetRepo.SaveBudget(s.ctx, id, domain.Month, 1, decimal.RequireFromString("100"))
	s.Require().NoError(err)

	deleted, err := s.repos.BudgetRepo.DeleteBudgetByCategoryID(s.ctx, id)
	s.Require().NoError(err)
	s.True(deleted)

	deleted, err = s.repos.BudgetRepo.DeleteBudgetByCategoryID(s.ctx, id)
	s.Require().NoError(err)
	s.False(deleted)
}

// --- Reporting ---

func (s *RepositoryTestSuite) TestListMonthAmounts_ExcludesMastersAndOtherMonths() {
	march := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	s.mustInsert(
		newTxn("m-parent", "supermarket", march, "-50.00"),
		newTxn("m-salary", "salary", march, "2500.00"),
		newTxn("a-rent", "rent", april, "-800.00"),
	)
	_, err := s.repos.TransactionRepo.SaveSplit(s.ctx, 1, []domain.Transaction{
		newTxn("m-child-1", "food", march, "-30.00"),
		newTxn("m-child-2", "household", march, "-20.00"),
	})
	s.Require().NoError(err)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	amounts, err := s.repos.ReportingRepo.ListMonthAmounts(s.ctx, from, from.AddDate(0, 1, 0))
	s.Require().NoError(err)

	// Parent excluded, children and salary included, April excluded.
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	s.Len(amounts, 3)
	s.True(total.Equal(decimal.RequireFromString("2450.00")), "got %s", total)
}

func (s *RepositoryTestSuite) TestListMonthEntries_IncludesSplitRelations() {
	march := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	s.mustInsert(newTxn("parent", "supermarket", march, "-50.00"))
	saved, err := s.repos.TransactionRepo.SaveSplit(s.ctx, 1, []domain.Transaction{
		newTxn("child", "food", march, "-50.00"),
	})
	s.Require().NoError(err)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entries, err := s.repos.ReportingRepo.ListMonthEntries(s.ctx, from, from.AddDate(0, 1, 0))
	s.Require().NoError(err)
	s.Require().Len(entries, 2)

	byID := map[int64]domain.StatementEntry{}
	for _, e := range entries {
		byID[e.TransactionID] = e
	}
	s.True(byID[1].HasChildren)
	s.Nil(byID[1].ParentID)
	child := byID[saved[0].TransactionID]
	s.Require().NotNil(child.ParentID)
	s.EqualValues(1, *child.ParentID)
	s.False(child.HasChildren)
}

func (s *RepositoryTestSuite) TestListMonthOutflows_OnlyOutflowsWithCategories() {
	groceries := s.mustCategory(domain.OutflowCategory, "Groceries")

	march := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	s.mustInsert(
		newTxn("out-1", "supermarket", march, "-50.00"),
		newTxn("out-2", "pharmacy", march, "-10.00"),
		newTxn("in-1", "salary", march, "2500.00"),
	)
	s.Require().NoError(s.repos.CategoryRepo.UpsertClassification(s.ctx, 1, groceries))

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	outflows, err := s.repos.ReportingRepo.ListMonthOutflows(s.ctx, from, from.AddDate(0, 1, 0))
	s.Require().NoError(err)
	s.Require().Len(outflows, 2)

	byCategory := map[string]decimal.Decimal{}
	for _, o := range outflows {
		byCategory[o.CategoryName] = o.Amount
	}
	s.True(byCategory["Groceries"].Equal(decimal.RequireFromString("-50.00")))
	s.True(byCategory[""].Equal(decimal.RequireFromString("-10.00")))
}
