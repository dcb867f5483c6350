package domain

import "time"

// Account represents a bank account that statement lines are imported into.
type Account struct {
	AccountID     int64     `json:"accountID"`
	AccountNumber string    `json:"accountNumber"` // External account number (IBAN etc.), unique
	Name          string    `json:"name"`
	Institution   string    `json:"institution"`
	CreatedAt     time.Time `json:"createdAt"`
}
