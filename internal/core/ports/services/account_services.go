package services

import (
	"context"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
)

// AccountReaderSvc defines read operations for accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account owned by the user.
	GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of the user's accounts and the total count.
	ListAccounts(ctx context.Context, userID string, limit, offset int) ([]domain.Account, int, error)
}

// AccountWriterSvc defines write operations for accounts
type AccountWriterSvc interface {
	// CreateAccount creates a new account for the user.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an existing account.
	UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// ArchiveAccount marks an account as archived; archived accounts reject new transactions.
	ArchiveAccount(ctx context.Context, userID string, accountID string) error

	// DeleteAccount marks an account as deleted (soft delete).
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
