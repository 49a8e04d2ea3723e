package services

import (
	"context"
	"io"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/bilalcinal/WhereDoUSpend/internal/core/ports/repositories"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction owned by the user, with its tags.
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, paginated list of the user's
	// transactions and the total count matching the filter.
	ListTransactions(ctx context.Context, userID string, filter repositories.TransactionFilter) ([]domain.Transaction, int, error)
}

// TransactionWriterSvc defines write operations for transactions
type TransactionWriterSvc interface {
	// CreateTransaction creates a new transaction for the user.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction updates an existing transaction. The tag set is
	// replaced with the one in the request.
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction marks a transaction as deleted (soft delete).
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionTransferSvc defines CSV import and export of transactions
type TransactionTransferSvc interface {
	// ImportCSV reads transactions from CSV and creates them for the user.
	// It returns the number of imported rows; a malformed row aborts the import.
	ImportCSV(ctx context.Context, userID string, r io.Reader) (int, error)

	// ExportCSV writes the user's transactions within the optional date range
	// to w in the import-compatible CSV format.
	ExportCSV(ctx context.Context, userID string, from, to *time.Time, w io.Writer) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionTransferSvc
}
