package dto

import (
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringRequest defines the data needed to create a recurring rule.
// The cadence validation is registered in the handlers package.
type CreateRecurringRequest struct {
	AccountID       *string                `json:"accountID"`
	CategoryID      string                 `json:"categoryID" binding:"required"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=INCOME EXPENSE"`
	Cadence         domain.Cadence         `json:"cadence" binding:"required,cadence"`
	NextRunAt       time.Time              `json:"nextRunAt" binding:"required"`
	Note            string                 `json:"note" binding:"max=500"`
}

// RecurringResponse defines the data returned for a recurring rule.
type RecurringResponse struct {
	RecurringID     string                 `json:"recurringID"`
	AccountID       *string                `json:"accountID"`
	CategoryID      string                 `json:"categoryID"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Cadence         domain.Cadence         `json:"cadence"`
	NextRunAt       time.Time              `json:"nextRunAt"`
	Note            string                 `json:"note"`
}

// ListRecurringResponse wraps the user's recurring rules.
type ListRecurringResponse struct {
	Recurring []RecurringResponse `json:"recurring"`
}

// RunDueResponse reports how many rules fired in a due run.
type RunDueResponse struct {
	Created int `json:"created"`
}

// ToRecurringResponse converts a domain RecurringRule to its DTO
func ToRecurringResponse(r *domain.RecurringRule) RecurringResponse {
	return RecurringResponse{
		RecurringID:     r.RecurringID,
		AccountID:       r.AccountID,
		CategoryID:      r.CategoryID,
		Amount:          r.Amount,
		TransactionType: r.TransactionType,
		Cadence:         r.Cadence,
		NextRunAt:       r.NextRunAt,
		Note:            r.Note,
	}
}

// ToListRecurringResponse converts domain RecurringRules to the list DTO
func ToListRecurringResponse(rules []domain.RecurringRule) ListRecurringResponse {
	resp := ListRecurringResponse{Recurring: make([]RecurringResponse, len(rules))}
	for i := range rules {
		resp.Recurring[i] = ToRecurringResponse(&rules[i])
	}
	return resp
}
