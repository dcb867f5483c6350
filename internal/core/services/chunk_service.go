package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_ledger_app/internal/dto"
	"github.com/SscSPs/personal_ledger_app/internal/fingerprint"
	"github.com/SscSPs/personal_ledger_app/internal/logging"
	"github.com/shopspring/decimal"
)

// ChunkService implements the split state machine. A transaction moves from
// whole to split-pending (staged, in memory only) to split-committed (children
// and links persisted atomically). Splitting is one level deep: a child can
// never be split again.
type ChunkService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
}

func NewChunkService(transactionRepo portsrepo.TransactionRepositoryFacade) *ChunkService {
	return &ChunkService{transactionRepo: transactionRepo}
}

// StageSplit validates the chunks against the parent and returns the staged
// split. Nothing is persisted; abandoning the result leaves the store untouched.
func (s *ChunkService) StageSplit(ctx context.Context, transactionID int64, chunks []dto.ChunkInput) (*domain.PendingSplit, error) {
	logger := logging.FromCtx(ctx)

	parent, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to load split parent", slog.String("error", err.Error()), slog.Int64("transaction_id", transactionID))
		}
		return nil, err
	}

	hasChildren, err := s.transactionRepo.HasChildren(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if hasChildren {
		return nil, fmt.Errorf("%w: transaction %d is already split", apperrors.ErrConflict, transactionID)
	}

	isChild, err := s.transactionRepo.IsChild(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if isChild {
		return nil, fmt.Errorf("%w: transaction %d is itself a chunk and cannot be split further", apperrors.ErrConflict, transactionID)
	}

	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: a split needs at least one chunk", apperrors.ErrValidation)
	}

	sum := decimal.Zero
	for i, chunk := range chunks {
		if chunk.Description == "" {
			return nil, fmt.Errorf("%w: chunk %d has no description", apperrors.ErrValidation, i+1)
		}
		if chunk.Amount.IsZero() {
			return nil, fmt.Errorf("%w: chunk %d has a zero amount", apperrors.ErrValidation, i+1)
		}
		if domain.DirectionOf(chunk.Amount) != parent.Direction {
			return nil, fmt.Errorf("%w: chunk %d does not match the parent's direction", apperrors.ErrValidation, i+1)
		}
		sum = sum.Add(chunk.Amount)
	}
	if !sum.Equal(parent.Amount) {
		return nil, fmt.Errorf("%w: chunks sum to %s but the parent amount is %s", apperrors.ErrConflict, sum, parent.Amount)
	}

	now := time.Now()
	children := make([]domain.Transaction, len(chunks))
	for i, chunk := range chunks {
		children[i] = domain.Transaction{
			Hash:        fingerprint.ComputeChild(parent.Hash, i, chunk.Amount, chunk.Description),
			Description: chunk.Description,
			Date:        parent.Date,
			Amount:      chunk.Amount,
			Direction:   parent.Direction,
			AccountID:   parent.AccountID,
			CreatedAt:   now,
		}
	}

	return &domain.PendingSplit{Parent: *parent, Children: children}, nil
}

// CommitSplit persists a staged split atomically. The repository re-checks
// the re-split guard inside the same database transaction.
func (s *ChunkService) CommitSplit(ctx context.Context, pending *domain.PendingSplit) ([]domain.Transaction, error) {
	logger := logging.FromCtx(ctx)

	saved, err := s.transactionRepo.SaveSplit(ctx, pending.Parent.TransactionID, pending.Children)
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to persist split", slog.String("error", err.Error()), slog.Int64("transaction_id", pending.Parent.TransactionID))
		}
		return nil, err
	}

	logger.Info("Transaction split",
		slog.Int64("transaction_id", pending.Parent.TransactionID),
		slog.Int("chunks", len(saved)))
	return saved, nil
}

// Split stages and commits in one step for non-interactive callers.
func (s *ChunkService) Split(ctx context.Context, transactionID int64, chunks []dto.ChunkInput) ([]domain.Transaction, error) {
	pending, err := s.StageSplit(ctx, transactionID, chunks)
	if err != nil {
		return nil, err
	}
	return s.CommitSplit(ctx, pending)
}
