package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row shape of the transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType string          `db:"transaction_type"`
	Date            time.Time       `db:"date"`
	Note            string          `db:"note"`
	AccountID       *string         `db:"account_id"`
	CategoryID      *string         `db:"category_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
