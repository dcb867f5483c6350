package mapping

import (
	"database/sql"

	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	"github.com/SscSPs/personal_ledger_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	var accountID sql.NullInt64
	if d.AccountID != nil {
		accountID = sql.NullInt64{Int64: *d.AccountID, Valid: true}
	}
	return models.Transaction{
		TransactionID: d.TransactionID,
		Hash:          d.Hash,
		Description:   d.Description,
		Date:          d.Date,
		Amount:        d.Amount,
		Direction:     string(d.Direction),
		AccountID:     accountID,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	var accountID *int64
	if m.AccountID.Valid {
		id := m.AccountID.Int64
		accountID = &id
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Hash:          m.Hash,
		Description:   m.Description,
		Date:          m.Date,
		Amount:        m.Amount,
		Direction:     domain.Direction(m.Direction),
		AccountID:     accountID,
		CreatedAt:     m.CreatedAt,
	}
}
