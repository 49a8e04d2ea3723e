package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringRule is the row shape of the recurring_transactions table.
type RecurringRule struct {
	RecurringID     string          `db:"recurring_id"`
	UserID          string          `db:"user_id"`
	AccountID       *string         `db:"account_id"`
	CategoryID      string          `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType string          `db:"transaction_type"`
	Cadence         string          `db:"cadence"`
	NextRunAt       time.Time       `db:"next_run_at"`
	Note            string          `db:"note"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
