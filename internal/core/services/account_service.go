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
	"github.com/SscSPs/personal_ledger_app/internal/logging"
)

type AccountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

func NewAccountService(repo portsrepo.AccountRepositoryFacade) *AccountService {
	return &AccountService{accountRepo: repo}
}

// CreateAccount registers a bank account the ledger can attribute
// transactions to. Account numbers are unique; re-registering one fails.
func (s *AccountService) CreateAccount(ctx context.Context, accountNumber, name, institution string) (*domain.Account, error) {
	logger := logging.FromCtx(ctx)

	accountNumber = strings.TrimSpace(accountNumber)
	name = strings.TrimSpace(name)
	if accountNumber == "" {
		return nil, fmt.Errorf("%w: account number cannot be empty", apperrors.ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
	}

	account := domain.Account{
		AccountNumber: accountNumber,
		Name:          name,
		Institution:   strings.TrimSpace(institution),
		CreatedAt:     time.Now(),
	}

	accountID, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_number", accountNumber))
		}
		return nil, err
	}
	account.AccountID = accountID

	logger.Info("Account created", slog.Int64("account_id", accountID), slog.String("account_number", accountNumber))
	return &account, nil
}

// GetAccountByNumber resolves an account by its external number.
func (s *AccountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	logger := logging.FromCtx(ctx)
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account", slog.String("error", err.Error()), slog.String("account_number", accountNumber))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves all registered accounts.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	logger := logging.FromCtx(ctx)
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}
