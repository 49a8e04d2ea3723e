package dto

import (
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlySummaryParams selects the month for the category summary report.
type MonthlySummaryParams struct {
	Year  int `form:"year" binding:"required,min=1970,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// SummaryRowResponse is one category/type total within a monthly summary.
type SummaryRowResponse struct {
	CategoryName    string                 `json:"categoryName"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Total           decimal.Decimal        `json:"total"`
}

// MonthlySummaryResponse wraps the category summary for a month.
type MonthlySummaryResponse struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Rows  []SummaryRowResponse `json:"rows"`
}

// CashflowParams selects the range and grain of the cashflow report.
type CashflowParams struct {
	From        time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To          time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
	Granularity string    `form:"granularity" binding:"omitempty,oneof=day month"`
}

// CashflowPointResponse is one bucket of the cashflow report.
type CashflowPointResponse struct {
	Period string          `json:"period"`
	Net    decimal.Decimal `json:"net"`
}

// CashflowResponse wraps the cashflow series.
type CashflowResponse struct {
	Points []CashflowPointResponse `json:"points"`
}

// AccountTotalsParams selects the range of the per-account report.
type AccountTotalsParams struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// AccountTotalResponse is one account's net over the range.
type AccountTotalResponse struct {
	AccountName string          `json:"accountName"`
	Net         decimal.Decimal `json:"net"`
}

// AccountTotalsResponse wraps the per-account totals.
type AccountTotalsResponse struct {
	Accounts []AccountTotalResponse `json:"accounts"`
}

// BudgetVsActualRowResponse compares one category's budget to its spend.
type BudgetVsActualRowResponse struct {
	CategoryName string          `json:"categoryName"`
	Budgeted     decimal.Decimal `json:"budgeted"`
	Actual       decimal.Decimal `json:"actual"`
}

// BudgetVsActualResponse wraps the budget comparison for a month.
type BudgetVsActualResponse struct {
	Year  int                         `json:"year"`
	Month int                         `json:"month"`
	Rows  []BudgetVsActualRowResponse `json:"rows"`
}

// ExportParams bounds the CSV export range. Both bounds are optional.
type ExportParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// ToMonthlySummaryResponse converts domain summary rows to the report DTO
func ToMonthlySummaryResponse(year, month int, rows []domain.SummaryRow) MonthlySummaryResponse {
	resp := MonthlySummaryResponse{Year: year, Month: month, Rows: make([]SummaryRowResponse, len(rows))}
	for i, r := range rows {
		resp.Rows[i] = SummaryRowResponse{CategoryName: r.CategoryName, TransactionType: r.TransactionType, Total: r.Total}
	}
	return resp
}

// ToCashflowResponse converts domain cashflow points to the report DTO
func ToCashflowResponse(points []domain.CashflowPoint) CashflowResponse {
	resp := CashflowResponse{Points: make([]CashflowPointResponse, len(points))}
	for i, p := range points {
		resp.Points[i] = CashflowPointResponse{Period: p.Period, Net: p.Net}
	}
	return resp
}

// ToAccountTotalsResponse converts domain account totals to the report DTO
func ToAccountTotalsResponse(totals []domain.AccountTotal) AccountTotalsResponse {
	resp := AccountTotalsResponse{Accounts: make([]AccountTotalResponse, len(totals))}
	for i, t := range totals {
		resp.Accounts[i] = AccountTotalResponse{AccountName: t.AccountName, Net: t.Net}
	}
	return resp
}

// ToBudgetVsActualResponse converts domain comparison rows to the report DTO
func ToBudgetVsActualResponse(year, month int, rows []domain.BudgetVsActualRow) BudgetVsActualResponse {
	resp := BudgetVsActualResponse{Year: year, Month: month, Rows: make([]BudgetVsActualRowResponse, len(rows))}
	for i, r := range rows {
		resp.Rows[i] = BudgetVsActualRowResponse{CategoryName: r.CategoryName, Budgeted: r.Budgeted, Actual: r.Actual}
	}
	return resp
}
