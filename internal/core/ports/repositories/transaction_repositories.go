package repositories

import (
	"context"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionFilter narrows transaction listings. Zero values mean "no filter".
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	AccountID  *string
	CategoryID *string
	DateAsc    bool // default ordering is date descending
	Limit      int
	Offset     int
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves one transaction owned by userID, with tags.
	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered page of transactions with their
	// tags attached.
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, error)

	// CountTransactions returns the total matching the filter, ignoring paging.
	CountTransactions(ctx context.Context, userID string, filter TransactionFilter) (int, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and its tag links.
	SaveTransaction(ctx context.Context, txn domain.Transaction, tagIDs []string) error

	// UpdateTransaction updates a transaction and replaces its tag links.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, tagIDs []string) error

	// MarkTransactionDeleted soft-deletes a transaction.
	MarkTransactionDeleted(ctx context.Context, userID string, transactionID string, deletedAt time.Time, deletedBy string) error
}

// TransactionSink materializes transactions inside an externally owned
// database transaction. The due-run processor writes through this so the
// whole batch commits or rolls back as one unit.
type TransactionSink interface {
	// CreateTransactionInTx inserts one transaction within tx.
	CreateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionSink
}
