package repositories

import (
	"context"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
)

// AccountReader defines read operations for account data. Every operation is
// scoped to the owning user.
type AccountReader interface {
	// FindAccountByID retrieves one account owned by userID.
	FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// FindAccountByName retrieves one account by its per-user unique name.
	FindAccountByName(ctx context.Context, userID string, name string) (*domain.Account, error)

	// ListAccounts retrieves unarchived accounts ordered by name.
	ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error)

	// CountAccounts returns the number of unarchived accounts.
	CountAccounts(ctx context.Context, userID string) (int, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// MarkAccountArchived flags an account as archived without deleting it.
	MarkAccountArchived(ctx context.Context, userID string, accountID string, updatedBy string, updatedAt time.Time) error

	// MarkAccountDeleted soft-deletes an account.
	MarkAccountDeleted(ctx context.Context, userID string, accountID string, deletedAt time.Time, deletedBy string) error
}

// AccountRepositoryFacade combines all account repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
