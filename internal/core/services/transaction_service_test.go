package services_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/apperrors"
	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	portsrepo "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/repositories"
	"github.com/bilalcinal/WhereDoUSpend/internal/core/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) (int, error) {
	args := m.Called(ctx, userID, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, tagIDs []string) error {
	args := m.Called(ctx, txn, tagIDs)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, tagIDs []string) error {
	args := m.Called(ctx, txn, tagIDs)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionDeleted(ctx context.Context, userID string, transactionID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, transactionID, deletedAt, deletedBy)
	return args.Error(0)
}

func (m *MockTransactionRepository) CreateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByName(ctx context.Context, userID string, name string) (*domain.Account, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, userID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CountAccounts(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) MarkAccountArchived(ctx context.Context, userID string, accountID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, accountID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockAccountRepository) MarkAccountDeleted(ctx context.Context, userID string, accountID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, accountID, deletedAt, deletedBy)
	return args.Error(0)
}

// MockCategoryRepository is a mock type for the CategoryRepositoryFacade interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) MarkCategoryDeleted(ctx context.Context, userID string, categoryID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, categoryID, deletedAt, deletedBy)
	return args.Error(0)
}

// MockTagRepository is a mock type for the TagRepositoryFacade interface
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) SaveTag(ctx context.Context, tag domain.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) FindTagByName(ctx context.Context, userID string, name string) (*domain.Tag, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) FindTagsByIDs(ctx context.Context, userID string, tagIDs []string) ([]domain.Tag, error) {
	args := m.Called(ctx, userID, tagIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagRepository) ListTags(ctx context.Context, userID string, search string, limit int, offset int) ([]domain.Tag, error) {
	args := m.Called(ctx, userID, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagRepository) CountTags(ctx context.Context, userID string, search string) (int, error) {
	args := m.Called(ctx, userID, search)
	return args.Int(0), args.Error(1)
}

func (m *MockTagRepository) MarkTagDeleted(ctx context.Context, userID string, tagID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, tagID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxns *MockTransactionRepository
	mockAcct *MockAccountRepository
	mockCats *MockCategoryRepository
	mockTags *MockTagRepository
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxns = new(MockTransactionRepository)
	suite.mockAcct = new(MockAccountRepository)
	suite.mockCats = new(MockCategoryRepository)
	suite.mockTags = new(MockTagRepository)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ArchivedAccountRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	svc := services.NewTransactionService(suite.mockTxns, suite.mockAcct, suite.mockCats, suite.mockTags)

	suite.mockAcct.On("FindAccountByID", ctx, userID, accountID).
		Return(&domain.Account{AccountID: accountID, UserID: userID, IsArchived: true}, nil).Once()

	txn, err := svc.CreateTransaction(ctx, userID, dto.CreateTransactionRequest{
		Amount:          decimal.NewFromInt(5),
		TransactionType: domain.Expense,
		Date:            time.Now(),
		AccountID:       &accountID,
	})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxns.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownTagRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	tagID := uuid.NewString()
	svc := services.NewTransactionService(suite.mockTxns, suite.mockAcct, suite.mockCats, suite.mockTags)

	suite.mockTags.On("FindTagsByIDs", ctx, userID, []string{tagID}).Return([]domain.Tag{}, nil).Once()

	txn, err := svc.CreateTransaction(ctx, userID, dto.CreateTransactionRequest{
		Amount:          decimal.NewFromInt(5),
		TransactionType: domain.Income,
		Date:            time.Now(),
		TagIDs:          []string{tagID},
	})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestImportCSV_CreatesEachRow() {
	ctx := context.Background()
	userID := uuid.NewString()
	svc := services.NewTransactionService(suite.mockTxns, suite.mockAcct, suite.mockCats, suite.mockTags)

	csvData := strings.Join([]string{
		"Date,Amount,Type,Note,AccountId,CategoryId",
		"2026-01-05,1200.50,1,salary,,",
		"2026-01-06,42.00,2,groceries,,",
	}, "\n")

	suite.mockTxns.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), []string(nil)).Return(nil).Twice()
	suite.mockTxns.On("FindTransactionByID", ctx, userID, mock.AnythingOfType("string")).
		Return(&domain.Transaction{UserID: userID}, nil).Twice()

	imported, err := svc.ImportCSV(ctx, userID, strings.NewReader(csvData))

	suite.Require().NoError(err)
	suite.Equal(2, imported)
	suite.mockTxns.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestImportCSV_TypeCodesMapToDomainTypes() {
	ctx := context.Background()
	userID := uuid.NewString()
	svc := services.NewTransactionService(suite.mockTxns, suite.mockAcct, suite.mockCats, suite.mockTags)

	csvData := "2026-02-01,10.00,1,,,\n2026-02-02,20.00,2,,,\n"

	var seen []domain.TransactionType
	suite.mockTxns.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		seen = append(seen, txn.TransactionType)
		return true
	}), []string(nil)).Return(nil).Twice()
	suite.mockTxns.On("FindTransactionByID", ctx, userID, mock.AnythingOfType("string")).
		Return(&domain.Transaction{UserID: userID}, nil).Twice()

	imported, err := svc.ImportCSV(ctx, userID, strings.NewReader(csvData))

	suite.Require().NoError(err)
	suite.Equal(2, imported)
	suite.Equal([]domain.TransactionType{domain.Income, domain.Expense}, seen)
}

func (suite *TransactionServiceTestSuite) TestImportCSV_MalformedRowAbortsImport() {
	ctx := context.Background()
	userID := uuid.NewString()
	svc := services.NewTransactionService(suite.mockTxns, suite.mockAcct, suite.mockCats, suite.mockTags)

	csvData := strings.Join([]string{
		"2026-03-01,10.00,1,ok,,",
		"2026-03-02,not-a-number,2,bad,,",
		"2026-03-03,30.00,1,never reached,,",
	}, "\n")

	suite.mockTxns.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), []string(nil)).Return(nil).Once()
	suite.mockTxns.On("FindTransactionByID", ctx, userID, mock.AnythingOfType("string")).
		Return(&domain.Transaction{UserID: userID}, nil).Once()

	imported, err := svc.ImportCSV(ctx, userID, strings.NewReader(csvData))

	suite.Require().Error(err)
	suite.Equal(1, imported)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "line 2")
	suite.mockTxns.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestImportCSV_InvalidTypeCodeRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	svc := services.NewTransactionService(suite.mockTxns, suite.mockAcct, suite.mockCats, suite.mockTags)

	imported, err := svc.ImportCSV(ctx, userID, strings.NewReader("2026-03-01,10.00,3,,,\n"))

	suite.Require().Error(err)
	suite.Equal(0, imported)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestImportCSV_HeaderOnlyImportsNothing() {
	ctx := context.Background()
	userID := uuid.NewString()
	svc := services.NewTransactionService(suite.mockTxns, suite.mockAcct, suite.mockCats, suite.mockTags)

	imported, err := svc.ImportCSV(ctx, userID, strings.NewReader("Date,Amount,Type,Note,AccountId,CategoryId\n"))

	suite.Require().NoError(err)
	suite.Equal(0, imported)
	suite.mockTxns.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestExportCSV_WritesImportCompatibleRows() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := "acc-1"
	categoryID := "cat-1"
	svc := services.NewTransactionService(suite.mockTxns, suite.mockAcct, suite.mockCats, suite.mockTags)

	txns := []domain.Transaction{
		{
			TransactionID:   uuid.NewString(),
			UserID:          userID,
			Amount:          decimal.RequireFromString("1200.50"),
			TransactionType: domain.Income,
			Date:            time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
			Note:            "salary",
		},
		{
			TransactionID:   uuid.NewString(),
			UserID:          userID,
			Amount:          decimal.RequireFromString("42.00"),
			TransactionType: domain.Expense,
			Date:            time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC),
			Note:            "groceries",
			AccountID:       &accountID,
			CategoryID:      &categoryID,
		},
	}

	suite.mockTxns.On("ListTransactions", ctx, userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.DateAsc && f.Limit == 500 && f.Offset == 0
	})).Return(txns, nil).Once()

	var buf bytes.Buffer
	err := svc.ExportCSV(ctx, userID, nil, nil, &buf)

	suite.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	suite.Require().Len(lines, 3)
	suite.Equal("Date,Amount,Type,Note,AccountId,CategoryId", lines[0])
	suite.Equal("2026-01-05,1200.5,1,salary,,", lines[1])
	suite.Equal("2026-01-06,42,2,groceries,acc-1,cat-1", lines[2])
	suite.mockTxns.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestExportCSV_BoundsPassedThrough() {
	ctx := context.Background()
	userID := uuid.NewString()
	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	svc := services.NewTransactionService(suite.mockTxns, suite.mockAcct, suite.mockCats, suite.mockTags)

	suite.mockTxns.On("ListTransactions", ctx, userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.From != nil && f.From.Equal(from) && f.To != nil && f.To.Equal(to)
	})).Return([]domain.Transaction{}, nil).Once()

	var buf bytes.Buffer
	err := svc.ExportCSV(ctx, userID, &from, &to, &buf)

	suite.Require().NoError(err)
	suite.mockTxns.AssertExpectations(suite.T())
}
