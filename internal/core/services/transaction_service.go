package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/apperrors"
	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	portsrepo "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/repositories"
	portssvc "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// csvDateLayout is the date format used by both import and export.
const csvDateLayout = "2006-01-02"

var csvHeader = []string{"Date", "Amount", "Type", "Note", "AccountId", "CategoryId"}

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	categoryRepo    portsrepo.CategoryRepositoryFacade
	tagRepo         portsrepo.TagRepositoryFacade
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	tagRepo portsrepo.TagRepositoryFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		tagRepo:         tagRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateReferences checks that the optional account and category belong to
// the user, and that the account accepts new transactions.
func (s *transactionService) validateReferences(ctx context.Context, userID string, accountID, categoryID *string) error {
	if accountID != nil {
		account, err := s.accountRepo.FindAccountByID(ctx, userID, *accountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewAppError(400, "account not found", apperrors.ErrValidation)
			}
			return fmt.Errorf("failed to validate account: %w", err)
		}
		if account.IsArchived {
			return apperrors.NewAppError(400, "account is archived", apperrors.ErrValidation)
		}
	}
	if categoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, *categoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewAppError(400, "category not found", apperrors.ErrValidation)
			}
			return fmt.Errorf("failed to validate category: %w", err)
		}
	}
	return nil
}

// validateTags confirms every tag ID belongs to the user.
func (s *transactionService) validateTags(ctx context.Context, userID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	tags, err := s.tagRepo.FindTagsByIDs(ctx, userID, tagIDs)
	if err != nil {
		return fmt.Errorf("failed to validate tags: %w", err)
	}
	if len(tags) != len(tagIDs) {
		return apperrors.NewAppError(400, "one or more tags not found", apperrors.ErrValidation)
	}
	return nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.validateReferences(ctx, userID, req.AccountID, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.validateTags(ctx, userID, req.TagIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Date:            req.Date,
		Note:            req.Note,
		AccountID:       req.AccountID,
		CategoryID:      req.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn, req.TagIDs); err != nil {
		s.LogError(ctx, err, "Failed to create transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", "transaction_id", txn.TransactionID)
	return s.GetTransactionByID(ctx, userID, txn.TransactionID)
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to get transaction", "transaction_id", transactionID)
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, int, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	total, err := s.transactionRepo.CountTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to count transactions")
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return txns, total, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.GetTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, userID, req.AccountID, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.validateTags(ctx, userID, req.TagIDs); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := *existing
	txn.Amount = req.Amount
	txn.TransactionType = req.TransactionType
	txn.Date = req.Date
	txn.Note = req.Note
	txn.AccountID = req.AccountID
	txn.CategoryID = req.CategoryID
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = userID

	if err := s.transactionRepo.UpdateTransaction(ctx, txn, req.TagIDs); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to update transaction", "transaction_id", transactionID)
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return s.GetTransactionByID(ctx, userID, transactionID)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	now := time.Now().UTC()
	if err := s.transactionRepo.MarkTransactionDeleted(ctx, userID, transactionID, now, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to delete transaction", "transaction_id", transactionID)
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", "transaction_id", transactionID)
	return nil
}

// ImportCSV reads transactions in the export format and creates them for the
// user. A malformed row fails the whole import; nothing is created past the
// bad row and the handler reports the row number.
func (s *transactionService) ImportCSV(ctx context.Context, userID string, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	imported := 0
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, apperrors.NewAppError(400, fmt.Sprintf("malformed CSV at line %d", line+1), err)
		}
		line++

		// Tolerate a leading header row.
		if line == 1 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "date") {
			continue
		}

		req, err := parseCSVRecord(record)
		if err != nil {
			return imported, apperrors.NewAppError(400, fmt.Sprintf("invalid row at line %d: %v", line, err), apperrors.ErrValidation)
		}

		if _, err := s.CreateTransaction(ctx, userID, *req); err != nil {
			return imported, fmt.Errorf("failed to import row at line %d: %w", line, err)
		}
		imported++
	}

	s.LogInfo(ctx, "CSV import finished", "imported", imported)
	return imported, nil
}

// parseCSVRecord converts one CSV row into a create request. Expected columns:
// Date, Amount, Type (1=INCOME, 2=EXPENSE), Note, AccountId, CategoryId; the
// last three are optional.
func parseCSVRecord(record []string) (*dto.CreateTransactionRequest, error) {
	if len(record) < 3 {
		return nil, fmt.Errorf("expected at least 3 columns, got %d", len(record))
	}

	date, err := time.Parse(csvDateLayout, strings.TrimSpace(record[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", record[0])
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", record[1])
	}

	var txnType domain.TransactionType
	switch strings.TrimSpace(record[2]) {
	case "1":
		txnType = domain.Income
	case "2":
		txnType = domain.Expense
	default:
		return nil, fmt.Errorf("invalid type %q", record[2])
	}

	req := &dto.CreateTransactionRequest{
		Amount:          amount,
		TransactionType: txnType,
		Date:            date,
	}
	if len(record) > 3 {
		req.Note = strings.TrimSpace(record[3])
	}
	if len(record) > 4 {
		if accountID := strings.TrimSpace(record[4]); accountID != "" {
			req.AccountID = &accountID
		}
	}
	if len(record) > 5 {
		if categoryID := strings.TrimSpace(record[5]); categoryID != "" {
			req.CategoryID = &categoryID
		}
	}
	return req, nil
}

// ExportCSV streams the user's transactions within the optional date range
// to w, oldest first, in the import-compatible format.
func (s *transactionService) ExportCSV(ctx context.Context, userID string, from, to *time.Time, w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	const pageSize = 500
	offset := 0
	for {
		filter := portsrepo.TransactionFilter{
			From:    from,
			To:      to,
			DateAsc: true,
			Limit:   pageSize,
			Offset:  offset,
		}
		txns, err := s.transactionRepo.ListTransactions(ctx, userID, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to list transactions for export")
			return fmt.Errorf("failed to export transactions: %w", err)
		}

		for _, txn := range txns {
			typeCode := "1"
			if txn.TransactionType == domain.Expense {
				typeCode = "2"
			}
			record := []string{
				txn.Date.Format(csvDateLayout),
				txn.Amount.String(),
				typeCode,
				txn.Note,
				derefOrEmpty(txn.AccountID),
				derefOrEmpty(txn.CategoryID),
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}

		if len(txns) < pageSize {
			break
		}
		offset += pageSize
	}

	writer.Flush()
	return writer.Error()
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
