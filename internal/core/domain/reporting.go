package domain

import (
	"github.com/shopspring/decimal"
)

// SummaryRow is one category/direction bucket in the monthly summary report.
// Income amounts are positive, expenses negative.
type SummaryRow struct {
	CategoryName    string          `json:"categoryName"`
	TransactionType TransactionType `json:"transactionType"`
	Total           decimal.Decimal `json:"total"`
}

// CashflowPoint is the signed net for one period. Period is "2006-01-02" for
// daily buckets and "2006-01" for monthly ones.
type CashflowPoint struct {
	Period string          `json:"period"`
	Net    decimal.Decimal `json:"net"`
}

// AccountTotal is the signed net for one account over a range.
type AccountTotal struct {
	AccountName string          `json:"accountName"`
	Net         decimal.Decimal `json:"net"`
}

// BudgetVsActualRow compares one category's budgeted amount against the
// expenses actually recorded in the month.
type BudgetVsActualRow struct {
	CategoryName string          `json:"categoryName"`
	Budgeted     decimal.Decimal `json:"budgeted"`
	Actual       decimal.Decimal `json:"actual"`
}
