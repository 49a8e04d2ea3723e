package services

import (
	"context"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// MonthlySummary totals the user's transactions by category and type for a month
	MonthlySummary(ctx context.Context, userID string, year, month int) ([]domain.SummaryRow, error)

	// Cashflow computes net income minus expense per day or per month over a range
	Cashflow(ctx context.Context, userID string, from, to time.Time, byMonth bool) ([]domain.CashflowPoint, error)

	// AccountTotals computes the net amount per account over a range
	AccountTotals(ctx context.Context, userID string, from, to time.Time) ([]domain.AccountTotal, error)

	// BudgetVsActual compares each budgeted category's budget to its expense total for a month
	BudgetVsActual(ctx context.Context, userID string, year, month int) ([]domain.BudgetVsActualRow, error)
}
