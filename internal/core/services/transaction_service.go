package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_ledger_app/internal/logging"
)

type TransactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
}

func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo, accountRepo: accountRepo}
}

// GetTransaction retrieves a transaction by identifier.
func (s *TransactionService) GetTransaction(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

// AnnotateTransaction attaches or replaces the transaction's free-text note.
func (s *TransactionService) AnnotateTransaction(ctx context.Context, transactionID int64, note string) error {
	logger := logging.FromCtx(ctx)

	note = strings.TrimSpace(note)
	if note == "" {
		return fmt.Errorf("%w: note cannot be empty", apperrors.ErrValidation)
	}

	if _, err := s.transactionRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return err
	}

	if err := s.transactionRepo.UpsertAnnotation(ctx, transactionID, note); err != nil {
		logger.Error("Failed to annotate transaction", slog.String("error", err.Error()), slog.Int64("transaction_id", transactionID))
		return err
	}

	logger.Info("Transaction annotated", slog.Int64("transaction_id", transactionID))
	return nil
}

// LinkAccount attributes a transaction to a registered account.
func (s *TransactionService) LinkAccount(ctx context.Context, transactionID int64, accountID int64) error {
	logger := logging.FromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
		}
		return err
	}

	if err := s.transactionRepo.LinkAccount(ctx, transactionID, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to link transaction to account", slog.String("error", err.Error()),
				slog.Int64("transaction_id", transactionID), slog.Int64("account_id", accountID))
		}
		return err
	}

	logger.Info("Transaction linked to account", slog.Int64("transaction_id", transactionID), slog.Int64("account_id", accountID))
	return nil
}
