package dto

import (
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required,max=100"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=CASH BANK CARD"`
	CurrencyCode   string             `json:"currencyCode" binding:"required,len=3,uppercase"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
}

// UpdateAccountRequest defines the updatable fields of an account.
// Nil fields are left unchanged.
type UpdateAccountRequest struct {
	Name        *string             `json:"name" binding:"omitempty,max=100"`
	AccountType *domain.AccountType `json:"accountType" binding:"omitempty,oneof=CASH BANK CARD"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize,default=20" binding:"omitempty,min=1,max=200"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	CurrencyCode   string             `json:"currencyCode"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	IsArchived     bool               `json:"isArchived"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// ListAccountsResponse wraps a page of accounts with the total count.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// ToAccountResponse converts a domain Account to an AccountResponse DTO
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Name:           a.Name,
		AccountType:    a.AccountType,
		CurrencyCode:   a.CurrencyCode,
		OpeningBalance: a.OpeningBalance,
		IsArchived:     a.IsArchived,
		CreatedAt:      a.CreatedAt,
	}
}

// ToListAccountsResponse converts a page of domain Accounts to the list DTO
func ToListAccountsResponse(accounts []domain.Account, total, page, pageSize int) ListAccountsResponse {
	resp := ListAccountsResponse{
		Accounts: make([]AccountResponse, len(accounts)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range accounts {
		resp.Accounts[i] = ToAccountResponse(&accounts[i])
	}
	return resp
}
