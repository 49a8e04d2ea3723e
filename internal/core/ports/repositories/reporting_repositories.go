package repositories

import (
	"context"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
)

// ReportingRepository defines the aggregation queries behind the report
// endpoints. All queries exclude soft-deleted transactions.
type ReportingRepository interface {
	// GetMonthlySummary groups one month's transactions by category and
	// direction; income positive, expense negative.
	GetMonthlySummary(ctx context.Context, userID string, year int, month int) ([]domain.SummaryRow, error)

	// GetCashflow returns the signed net per period over [from, to],
	// grouped by calendar month when byMonth is set, by day otherwise.
	GetCashflow(ctx context.Context, userID string, from, to time.Time, byMonth bool) ([]domain.CashflowPoint, error)

	// GetAccountTotals returns the signed net per account over [from, to].
	GetAccountTotals(ctx context.Context, userID string, from, to time.Time) ([]domain.AccountTotal, error)

	// GetBudgetVsActual pairs each budget of the month with the expenses
	// recorded against its category.
	GetBudgetVsActual(ctx context.Context, userID string, year int, month int) ([]domain.BudgetVsActualRow, error)
}
