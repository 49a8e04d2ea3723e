package dto

import (
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=INCOME EXPENSE"`
	Date            time.Time              `json:"date" binding:"required"`
	Note            string                 `json:"note" binding:"max=500"`
	AccountID       *string                `json:"accountID"`
	CategoryID      *string                `json:"categoryID"`
	TagIDs          []string               `json:"tagIDs"`
}

// UpdateTransactionRequest replaces a transaction's fields and tag set.
type UpdateTransactionRequest struct {
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=INCOME EXPENSE"`
	Date            time.Time              `json:"date" binding:"required"`
	Note            string                 `json:"note" binding:"max=500"`
	AccountID       *string                `json:"accountID"`
	CategoryID      *string                `json:"categoryID"`
	TagIDs          []string               `json:"tagIDs"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
	AccountID  *string    `form:"accountID"`
	CategoryID *string    `form:"categoryID"`
	Sort       string     `form:"sort,default=date:desc" binding:"omitempty,oneof=date:asc date:desc"`
	Page       int        `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize   int        `form:"pageSize,default=20" binding:"omitempty,min=1,max=500"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Date            time.Time              `json:"date"`
	Note            string                 `json:"note"`
	AccountID       *string                `json:"accountID"`
	CategoryID      *string                `json:"categoryID"`
	AccountName     *string                `json:"accountName,omitempty"`
	CategoryName    *string                `json:"categoryName,omitempty"`
	Tags            []string               `json:"tags"`
}

// ListTransactionsResponse wraps a page of transactions with the total count.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"pageSize"`
}

// ImportResponse reports how many CSV rows became transactions.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ToTransactionResponse converts a domain Transaction to its DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	tags := make([]string, len(t.Tags))
	for i, tag := range t.Tags {
		tags[i] = tag.Name
	}
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Amount:          t.Amount,
		TransactionType: t.TransactionType,
		Date:            t.Date,
		Note:            t.Note,
		AccountID:       t.AccountID,
		CategoryID:      t.CategoryID,
		AccountName:     t.AccountName,
		CategoryName:    t.CategoryName,
		Tags:            tags,
	}
}

// ToListTransactionsResponse converts a page of domain Transactions to the list DTO
func ToListTransactionsResponse(txns []domain.Transaction, total, page, pageSize int) ListTransactionsResponse {
	resp := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(txns)),
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}
	for i := range txns {
		resp.Transactions[i] = ToTransactionResponse(&txns[i])
	}
	return resp
}
