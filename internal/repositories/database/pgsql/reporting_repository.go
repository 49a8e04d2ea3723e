package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	portsrepo "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetMonthlySummary groups one month's transactions by category and direction.
// Transactions without a category fall into the 'Uncategorized' bucket.
func (r *reportingRepository) GetMonthlySummary(ctx context.Context, userID string, year int, month int) ([]domain.SummaryRow, error) {
	query := `
		SELECT
			COALESCE(c.name, 'Uncategorized') AS category_name,
			t.transaction_type,
			SUM(t.amount) AS total
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.category_id
		WHERE t.user_id = $1
			AND EXTRACT(YEAR FROM t.date) = $2
			AND EXTRACT(MONTH FROM t.date) = $3
			AND t.deleted_at IS NULL
		GROUP BY COALESCE(c.name, 'Uncategorized'), t.transaction_type
		ORDER BY category_name, t.transaction_type;
	`
	rows, err := r.Pool.Query(ctx, query, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly summary: %w", err)
	}
	defer rows.Close()

	var result []domain.SummaryRow
	for rows.Next() {
		var row domain.SummaryRow
		var transactionType string
		if err := rows.Scan(&row.CategoryName, &transactionType, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning monthly summary row: %w", err)
		}
		row.TransactionType = domain.TransactionType(transactionType)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly summary rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.SummaryRow{}, nil
	}
	return result, nil
}

// GetCashflow returns income minus expense per period over [from, to].
func (r *reportingRepository) GetCashflow(ctx context.Context, userID string, from, to time.Time, byMonth bool) ([]domain.CashflowPoint, error) {
	format := "YYYY-MM-DD"
	if byMonth {
		format = "YYYY-MM"
	}
	query := `
		SELECT
			TO_CHAR(t.date, $4) AS period,
			SUM(CASE WHEN t.transaction_type = 'INCOME' THEN t.amount ELSE -t.amount END) AS net
		FROM transactions t
		WHERE t.user_id = $1
			AND t.date >= $2 AND t.date <= $3
			AND t.deleted_at IS NULL
		GROUP BY TO_CHAR(t.date, $4)
		ORDER BY period;
	`
	rows, err := r.Pool.Query(ctx, query, userID, from, to, format)
	if err != nil {
		return nil, fmt.Errorf("error querying cashflow: %w", err)
	}
	defer rows.Close()

	var result []domain.CashflowPoint
	for rows.Next() {
		var point domain.CashflowPoint
		if err := rows.Scan(&point.Period, &point.Net); err != nil {
			return nil, fmt.Errorf("error scanning cashflow row: %w", err)
		}
		result = append(result, point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cashflow rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.CashflowPoint{}, nil
	}
	return result, nil
}

// GetAccountTotals returns the signed net per account over [from, to].
// Transactions not linked to an account are excluded.
func (r *reportingRepository) GetAccountTotals(ctx context.Context, userID string, from, to time.Time) ([]domain.AccountTotal, error) {
	query := `
		SELECT
			a.name AS account_name,
			SUM(CASE WHEN t.transaction_type = 'INCOME' THEN t.amount ELSE -t.amount END) AS net
		FROM transactions t
		JOIN accounts a ON t.account_id = a.account_id
		WHERE t.user_id = $1
			AND t.date >= $2 AND t.date <= $3
			AND t.deleted_at IS NULL
		GROUP BY a.account_id, a.name
		ORDER BY a.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying account totals: %w", err)
	}
	defer rows.Close()

	var result []domain.AccountTotal
	for rows.Next() {
		var row domain.AccountTotal
		if err := rows.Scan(&row.AccountName, &row.Net); err != nil {
			return nil, fmt.Errorf("error scanning account total row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account total rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.AccountTotal{}, nil
	}
	return result, nil
}

// GetBudgetVsActual pairs each budget of the month with the expense total
// recorded against its category.
func (r *reportingRepository) GetBudgetVsActual(ctx context.Context, userID string, year int, month int) ([]domain.BudgetVsActualRow, error) {
	query := `
		SELECT
			c.name AS category_name,
			b.amount AS budgeted,
			COALESCE(SUM(t.amount), 0) AS actual
		FROM budgets b
		JOIN categories c ON b.category_id = c.category_id
		LEFT JOIN transactions t ON t.category_id = b.category_id
			AND t.user_id = b.user_id
			AND t.transaction_type = 'EXPENSE'
			AND EXTRACT(YEAR FROM t.date) = b.year
			AND EXTRACT(MONTH FROM t.date) = b.month
			AND t.deleted_at IS NULL
		WHERE b.user_id = $1 AND b.year = $2 AND b.month = $3 AND b.deleted_at IS NULL
		GROUP BY c.name, b.amount
		ORDER BY c.name;
	`
	rows, err := r.Pool.Query(ctx, query, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("error querying budget vs actual: %w", err)
	}
	defer rows.Close()

	var result []domain.BudgetVsActualRow
	for rows.Next() {
		var row domain.BudgetVsActualRow
		if err := rows.Scan(&row.CategoryName, &row.Budgeted, &row.Actual); err != nil {
			return nil, fmt.Errorf("error scanning budget vs actual row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget vs actual rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.BudgetVsActualRow{}, nil
	}
	return result, nil
}
