package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_ledger_app/internal/dto"
	"github.com/SscSPs/personal_ledger_app/internal/logging"
	"github.com/agnivade/levenshtein"
)

// CategoryService manages the two category namespaces and transaction
// classification. Near-duplicate names ("Grocceries" next to "Groceries") are
// folded into the existing category instead of creating a sibling.
type CategoryService struct {
	categoryRepo    portsrepo.CategoryRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade

	// matchDistance is the Levenshtein cutoff (inclusive) below which a new
	// name is treated as a re-entry of an existing category.
	matchDistance int
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade, matchDistance int) *CategoryService {
	return &CategoryService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		matchDistance:   matchDistance,
	}
}

// validateCategoryName rejects empty names and the label the category report
// prints for unclassified spending, which would otherwise be ambiguous there.
func validateCategoryName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: category name cannot be empty", apperrors.ErrValidation)
	}
	if strings.EqualFold(name, UncategorizedLabel) {
		return fmt.Errorf("%w: %q is reserved for unclassified spending in reports", apperrors.ErrValidation, UncategorizedLabel)
	}
	return nil
}

// findSimilar returns the existing category whose name is within the
// Levenshtein cutoff of name, or nil. Comparison is case-insensitive; exact
// matches are the distance-zero case.
func (s *CategoryService) findSimilar(ctx context.Context, kind domain.CategoryKind, name string) (*domain.Category, error) {
	existing, err := s.categoryRepo.ListCategoriesByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(name)
	best := -1
	var match *domain.Category
	for i := range existing {
		d := levenshtein.ComputeDistance(lowered, strings.ToLower(existing[i].Name))
		if d <= s.matchDistance && (best == -1 || d < best) {
			best = d
			match = &existing[i]
		}
	}
	return match, nil
}

// AddCategory creates a category, unless an existing name in the same kind
// namespace matches exactly or nearly: then the addition is an idempotent
// no-op and the existing category is returned.
func (s *CategoryService) AddCategory(ctx context.Context, name string, kind domain.CategoryKind) (*dto.AddCategoryResult, error) {
	logger := logging.FromCtx(ctx)

	name = strings.TrimSpace(name)
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	match, err := s.findSimilar(ctx, kind, name)
	if err != nil {
		logger.Error("Failed to scan for similar categories", slog.String("error", err.Error()))
		return nil, err
	}
	if match != nil {
		logger.Info("Category addition folded into existing category",
			slog.String("requested", name), slog.String("existing", match.Name))
		return &dto.AddCategoryResult{Category: *match, Created: false}, nil
	}

	category := domain.Category{Kind: kind, Name: name, CreatedAt: time.Now()}
	categoryID, err := s.categoryRepo.SaveCategory(ctx, category)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save category", slog.String("error", err.Error()), slog.String("name", name))
		}
		return nil, err
	}
	category.CategoryID = categoryID

	logger.Info("Category created", slog.Int64("category_id", categoryID), slog.String("name", name), slog.String("kind", string(kind)))
	return &dto.AddCategoryResult{Category: category, Created: true}, nil
}

// ClassifyTransaction assigns a category to a transaction, replacing any
// previous classification. The category namespace follows the transaction's
// direction, and the name must match an existing category exactly
// (case-insensitively): classification never creates categories on the fly.
func (s *CategoryService) ClassifyTransaction(ctx context.Context, transactionID int64, categoryName string) error {
	logger := logging.FromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	kind := domain.KindForDirection(txn.Direction)
	category, err := s.categoryRepo.FindCategoryByName(ctx, kind, categoryName)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.UpsertClassification(ctx, transactionID, category.CategoryID); err != nil {
		logger.Error("Failed to classify transaction", slog.String("error", err.Error()), slog.Int64("transaction_id", transactionID))
		return err
	}

	logger.Info("Transaction classified", slog.Int64("transaction_id", transactionID), slog.String("category", category.Name))
	return nil
}

// RenameCategory changes a category's name in place. Classifications keep
// pointing at the same row, so history follows the rename.
func (s *CategoryService) RenameCategory(ctx context.Context, kind domain.CategoryKind, oldName, newName string) error {
	logger := logging.FromCtx(ctx)

	newName = strings.TrimSpace(newName)
	if err := validateCategoryName(newName); err != nil {
		return err
	}

	category, err := s.categoryRepo.FindCategoryByName(ctx, kind, oldName)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.RenameCategory(ctx, category.CategoryID, newName); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to rename category", slog.String("error", err.Error()), slog.Int64("category_id", category.CategoryID))
		}
		return err
	}

	logger.Info("Category renamed", slog.String("old", category.Name), slog.String("new", newName))
	return nil
}

// DeleteCategory removes a category with all its classifications and budget.
// A missing category is reported as false, not an error, so deletion is
// idempotent from the user's point of view.
func (s *CategoryService) DeleteCategory(ctx context.Context, kind domain.CategoryKind, name string) (bool, error) {
	logger := logging.FromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByName(ctx, kind, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Category to delete does not exist", slog.String("name", name), slog.String("kind", string(kind)))
			return false, nil
		}
		return false, err
	}

	if err := s.categoryRepo.DeleteCategoryCascade(ctx, category.CategoryID); err != nil {
		logger.Error("Failed to delete category", slog.String("error", err.Error()), slog.Int64("category_id", category.CategoryID))
		return false, err
	}

	logger.Info("Category deleted", slog.Int64("category_id", category.CategoryID), slog.String("name", category.Name))
	return true, nil
}

// ListCategories retrieves all categories ordered by kind then name.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}
