package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction represents a single money movement owned by one user.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	UserID          string          `json:"userID"`
	Amount          decimal.Decimal `json:"amount"` // Positive; direction carried by TransactionType
	TransactionType TransactionType `json:"transactionType"`
	Date            time.Time       `json:"date"`
	Note            string          `json:"note"`
	AccountID       *string         `json:"accountID"`  // Optional FK -> Account
	CategoryID      *string         `json:"categoryID"` // Optional FK -> Category
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	// Read-side enrichment: tags and the joined account/category names are
	// populated by list/get queries, never persisted from here.
	Tags         []Tag   `json:"tags,omitempty"`
	AccountName  *string `json:"accountName,omitempty"`
	CategoryName *string `json:"categoryName,omitempty"`
}
