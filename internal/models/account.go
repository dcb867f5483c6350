package models

import "time"

// Account is the database row model for a bank account.
type Account struct {
	AccountID     int64
	AccountNumber string
	Name          string
	Institution   string
	CreatedAt     time.Time
}
