package dto

import (
	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to set a monthly budget.
type CreateBudgetRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	Year       int             `json:"year" binding:"required,min=2000,max=2100"`
	Month      int             `json:"month" binding:"required,min=1,max=12"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateBudgetRequest changes a budget's amount only.
type UpdateBudgetRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ListBudgetsParams selects the calendar month to list.
type ListBudgetsParams struct {
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID   string          `json:"budgetID"`
	CategoryID string          `json:"categoryID"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}

// ListBudgetsResponse wraps the month's budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget to a BudgetResponse DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:   b.BudgetID,
		CategoryID: b.CategoryID,
		Year:       b.Year,
		Month:      b.Month,
		Amount:     b.Amount,
	}
}

// ToListBudgetsResponse converts domain Budgets to the list DTO
func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	resp := ListBudgetsResponse{Budgets: make([]BudgetResponse, len(budgets))}
	for i := range budgets {
		resp.Budgets[i] = ToBudgetResponse(&budgets[i])
	}
	return resp
}
