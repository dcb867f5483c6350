package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_ledger_app/internal/logging"
	"github.com/shopspring/decimal"
)

// BudgetService manages per-category spending limits. A budget and its
// recurrence live and die together, and a category carries at most one.
type BudgetService struct {
	budgetRepo   portsrepo.BudgetRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo, categoryRepo: categoryRepo}
}

func validateRecurrence(unit string, frequency int64, limit decimal.Decimal) (domain.RecurrenceUnit, error) {
	parsed, err := domain.ParseRecurrenceUnit(unit)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if frequency <= 0 {
		return "", fmt.Errorf("%w: frequency must be positive", apperrors.ErrValidation)
	}
	if !limit.IsPositive() {
		return "", fmt.Errorf("%w: limit must be positive", apperrors.ErrValidation)
	}
	return parsed, nil
}

// SetLimit creates a budget for the named category. A category that already
// carries a budget is rejected; use ModifyLimit instead.
func (s *BudgetService) SetLimit(ctx context.Context, categoryName string, kind domain.CategoryKind, unit string, frequency int64, limit decimal.Decimal) (*domain.BudgetWithRecurrence, error) {
	logger := logging.FromCtx(ctx)

	parsedUnit, err := validateRecurrence(unit, frequency, limit)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByName(ctx, kind, categoryName)
	if err != nil {
		return nil, err
	}

	bwr, err := s.budgetRepo.SaveBudget(ctx, category.CategoryID, parsedUnit, frequency, limit)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save budget", slog.String("error", err.Error()), slog.Int64("category_id", category.CategoryID))
		}
		return nil, err
	}

	logger.Info("Budget set", slog.String("category", category.Name),
		slog.String("limit", limit.String()), slog.String("unit", unit), slog.Int64("frequency", frequency))
	return bwr, nil
}

// ModifyLimit rewrites the existing budget of the named category.
func (s *BudgetService) ModifyLimit(ctx context.Context, categoryName string, kind domain.CategoryKind, unit string, frequency int64, limit decimal.Decimal) error {
	logger := logging.FromCtx(ctx)

	parsedUnit, err := validateRecurrence(unit, frequency, limit)
	if err != nil {
		return err
	}

	category, err := s.categoryRepo.FindCategoryByName(ctx, kind, categoryName)
	if err != nil {
		return err
	}

	bwr, err := s.budgetRepo.FindBudgetByCategoryID(ctx, category.CategoryID)
	if err != nil {
		return err
	}

	if err := s.budgetRepo.UpdateBudget(ctx, bwr.BudgetID, parsedUnit, frequency, limit); err != nil {
		logger.Error("Failed to update budget", slog.String("error", err.Error()), slog.Int64("budget_id", bwr.BudgetID))
		return err
	}

	logger.Info("Budget modified", slog.String("category", category.Name),
		slog.String("limit", limit.String()), slog.String("unit", unit), slog.Int64("frequency", frequency))
	return nil
}

// DeleteLimit removes the budget of the named category. A category without a
// budget reports false, not an error.
func (s *BudgetService) DeleteLimit(ctx context.Context, categoryName string, kind domain.CategoryKind) (bool, error) {
	logger := logging.FromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByName(ctx, kind, categoryName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Category for budget deletion does not exist", slog.String("name", categoryName))
			return false, nil
		}
		return false, err
	}

	deleted, err := s.budgetRepo.DeleteBudgetByCategoryID(ctx, category.CategoryID)
	if err != nil {
		logger.Error("Failed to delete budget", slog.String("error", err.Error()), slog.Int64("category_id", category.CategoryID))
		return false, err
	}
	if !deleted {
		logger.Warn("Category has no budget to delete", slog.String("name", category.Name))
		return false, nil
	}

	logger.Info("Budget deleted", slog.String("category", category.Name))
	return true, nil
}
