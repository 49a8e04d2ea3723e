package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget caps expected spending for one category in one calendar month.
type Budget struct {
	BudgetID   string          `json:"budgetID"` // Primary Key (UUID)
	UserID     string          `json:"userID"`
	CategoryID string          `json:"categoryID"`
	Year       int             `json:"year"`
	Month      int             `json:"month"` // 1..12
	Amount     decimal.Decimal `json:"amount"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
