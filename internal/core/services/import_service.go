package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/personal_ledger_app/internal/dto"
	"github.com/SscSPs/personal_ledger_app/internal/fingerprint"
	"github.com/SscSPs/personal_ledger_app/internal/logging"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ImportService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	validate        *validator.Validate
}

func NewImportService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) *ImportService {
	validate := validator.New()
	// decimal.Decimal is an opaque struct to the validator; expose it through
	// its driver.Valuer so "required" sees the rendered value.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if valuer, ok := field.Interface().(driver.Valuer); ok {
			if val, err := valuer.Value(); err == nil {
				return val
			}
		}
		return nil
	}, decimal.Decimal{})

	return &ImportService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		validate:        validate,
	}
}

// ImportStatement runs the import pipeline for one adapter batch: validate
// every record, fingerprint, drop duplicates (within the batch and against
// the store), and persist the remainder atomically. A single malformed record
// invalidates the entire batch; duplicates are expected and merely counted.
func (s *ImportService) ImportStatement(ctx context.Context, accountID int64, records []dto.StatementRecord) (*dto.ImportResult, error) {
	logger := logging.FromCtx(ctx)
	batchID := uuid.NewString()
	logger = logger.With(slog.String("batch_id", batchID), slog.Int64("account_id", accountID))

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
		}
		logger.Error("Failed to resolve import account", slog.String("error", err.Error()))
		return nil, err
	}

	// Validation pass first: nothing is fingerprinted or written until every
	// record in the batch is well-formed.
	for i, record := range records {
		if err := s.validate.Struct(record); err != nil {
			return nil, fmt.Errorf("%w: record %d is malformed: %v", apperrors.ErrValidation, i+1, err)
		}
		if record.Amount.IsZero() {
			return nil, fmt.Errorf("%w: record %d has a zero amount", apperrors.ErrValidation, i+1)
		}
	}

	now := time.Now()
	var candidates []domain.Transaction
	hashes := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	skipped := 0

	for _, record := range records {
		hash := fingerprint.Compute(accountID, record.Date, record.Amount, record.Description)
		if _, dup := seen[hash]; dup {
			// Same statement line appearing twice in one file.
			skipped++
			continue
		}
		seen[hash] = struct{}{}
		hashes = append(hashes, hash)

		acc := accountID
		candidates = append(candidates, domain.Transaction{
			Hash:        hash,
			Description: record.Description,
			Date:        record.Date,
			Amount:      record.Amount,
			Direction:   domain.DirectionOf(record.Amount),
			AccountID:   &acc,
			CreatedAt:   now,
		})
	}

	existing, err := s.transactionRepo.ExistingHashes(ctx, hashes)
	if err != nil {
		logger.Error("Failed to pre-filter hashes", slog.String("error", err.Error()))
		return nil, err
	}

	fresh := candidates[:0]
	for _, c := range candidates {
		if _, dup := existing[c.Hash]; dup {
			skipped++
			continue
		}
		fresh = append(fresh, c)
	}

	inserted, err := s.transactionRepo.BulkInsertTransactions(ctx, fresh)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A hash that passed the pre-filter collided at write time. The
			// batch was rolled back as a whole.
			return nil, fmt.Errorf("%w: batch aborted, a record was imported concurrently: %v", apperrors.ErrConflict, err)
		}
		logger.Error("Failed to persist import batch", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Statement imported", slog.Int("inserted", inserted), slog.Int("skipped", skipped))
	return &dto.ImportResult{BatchID: batchID, Inserted: inserted, Skipped: skipped}, nil
}
