package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies where the money lives.
type AccountType string

const (
	AccountCash AccountType = "CASH"
	AccountBank AccountType = "BANK"
	AccountCard AccountType = "CARD"
)

// Account represents a money source or destination owned by a single user.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary Key (UUID)
	UserID         string          `json:"userID"`    // Owner; every query is scoped by this
	Name           string          `json:"name"`      // Unique per user
	AccountType    AccountType     `json:"accountType"`
	CurrencyCode   string          `json:"currencyCode"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	IsArchived     bool            `json:"isArchived"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
