package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the row shape of the budgets table.
type Budget struct {
	BudgetID   string          `db:"budget_id"`
	UserID     string          `db:"user_id"`
	CategoryID string          `db:"category_id"`
	Year       int             `db:"year"`
	Month      int             `db:"month"`
	Amount     decimal.Decimal `db:"amount"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
