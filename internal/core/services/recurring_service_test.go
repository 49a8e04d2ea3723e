package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/apperrors"
	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	portssvc "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/core/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockRecurringRepository is a mock type for the RecurringRepositoryWithTx interface
type MockRecurringRepository struct {
	mock.Mock
}

func (m *MockRecurringRepository) SaveRecurringRule(ctx context.Context, rule domain.RecurringRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockRecurringRepository) FindRecurringRuleByID(ctx context.Context, userID string, recurringID string) (*domain.RecurringRule, error) {
	args := m.Called(ctx, userID, recurringID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringRepository) ListRecurringRules(ctx context.Context, userID string) ([]domain.RecurringRule, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringRepository) MarkRecurringRuleDeleted(ctx context.Context, userID string, recurringID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, recurringID, deletedAt, deletedBy)
	return args.Error(0)
}

func (m *MockRecurringRepository) FindDueRulesForUpdate(ctx context.Context, tx pgx.Tx, userID string, asOf time.Time) ([]domain.RecurringRule, error) {
	args := m.Called(ctx, tx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringRepository) AdvanceNextRunInTx(ctx context.Context, tx pgx.Tx, recurringID string, nextRunAt time.Time, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, recurringID, nextRunAt, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockRecurringRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockRecurringRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRecurringRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockTransactionSink is a mock type for the TransactionSink interface
type MockTransactionSink struct {
	mock.Mock
}

func (m *MockTransactionSink) CreateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

// fixedClock pins the reference instant used when no override is supplied.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// --- Test Suite Setup ---

type RecurringServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockRecurringRepository
	mockSink     *MockTransactionSink
	mockAccounts *MockAccountRepository
	mockCats     *MockCategoryRepository
	service      portssvc.RecurringSvcFacade
	now          time.Time
}

func (suite *RecurringServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRecurringRepository)
	suite.mockSink = new(MockTransactionSink)
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockCats = new(MockCategoryRepository)
	suite.now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewRecurringService(
		suite.mockRepo,
		suite.mockSink,
		suite.mockAccounts,
		suite.mockCats,
		services.WithClock(fixedClock{now: suite.now}),
	)
}

func (suite *RecurringServiceTestSuite) dueRule(userID string, cadence domain.Cadence, nextRunAt time.Time) domain.RecurringRule {
	return domain.RecurringRule{
		RecurringID:     uuid.NewString(),
		UserID:          userID,
		CategoryID:      uuid.NewString(),
		Amount:          decimal.NewFromInt(100),
		TransactionType: domain.Expense,
		Cadence:         cadence,
		NextRunAt:       nextRunAt,
		Note:            "rent",
	}
}

// --- RunDue ---

func (suite *RecurringServiceTestSuite) TestRunDue_NoDueRules() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindDueRulesForUpdate", ctx, nil, userID, suite.now).Return([]domain.RecurringRule{}, nil).Once()
	suite.mockRepo.On("Commit", ctx, nil).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, nil).Return(nil).Maybe()

	processed, err := suite.service.RunDue(ctx, userID, nil)

	suite.Require().NoError(err)
	suite.Equal(0, processed)
	suite.mockSink.AssertNotCalled(suite.T(), "CreateTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestRunDue_MaterializesEachDueRuleOnce() {
	ctx := context.Background()
	userID := uuid.NewString()
	daily := suite.dueRule(userID, domain.Daily, suite.now.Add(-2*time.Hour))
	weekly := suite.dueRule(userID, domain.Weekly, suite.now.Add(-26*time.Hour))

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindDueRulesForUpdate", ctx, nil, userID, suite.now).
		Return([]domain.RecurringRule{daily, weekly}, nil).Once()
	suite.mockSink.On("CreateTransactionInTx", ctx, nil, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == userID && txn.Date.Equal(suite.now)
	})).Return(nil).Twice()
	suite.mockRepo.On("AdvanceNextRunInTx", ctx, nil, daily.RecurringID, daily.NextRunAt.Add(24*time.Hour), userID, suite.now).Return(nil).Once()
	suite.mockRepo.On("AdvanceNextRunInTx", ctx, nil, weekly.RecurringID, weekly.NextRunAt.Add(7*24*time.Hour), userID, suite.now).Return(nil).Once()
	suite.mockRepo.On("Commit", ctx, nil).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, nil).Return(nil).Maybe()

	processed, err := suite.service.RunDue(ctx, userID, nil)

	suite.Require().NoError(err)
	suite.Equal(2, processed)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockSink.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestRunDue_LapsedRuleAdvancesSingleStep() {
	ctx := context.Background()
	userID := uuid.NewString()
	// Three days overdue: one call creates one transaction and moves the rule
	// one day, leaving it still due for the next run.
	rule := suite.dueRule(userID, domain.Daily, suite.now.Add(-72*time.Hour))

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindDueRulesForUpdate", ctx, nil, userID, suite.now).
		Return([]domain.RecurringRule{rule}, nil).Once()
	suite.mockSink.On("CreateTransactionInTx", ctx, nil, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Date.Equal(suite.now)
	})).Return(nil).Once()
	suite.mockRepo.On("AdvanceNextRunInTx", ctx, nil, rule.RecurringID, rule.NextRunAt.Add(24*time.Hour), userID, suite.now).Return(nil).Once()
	suite.mockRepo.On("Commit", ctx, nil).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, nil).Return(nil).Maybe()

	processed, err := suite.service.RunDue(ctx, userID, nil)

	suite.Require().NoError(err)
	suite.Equal(1, processed)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockSink.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestRunDue_MonthlyAdvanceClampsDay() {
	ctx := context.Background()
	userID := uuid.NewString()
	ref := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	rule := suite.dueRule(userID, domain.Monthly, time.Date(2026, time.January, 31, 9, 0, 0, 0, time.UTC))
	// 2026 is not a leap year, so Jan 31 advances to Feb 28.
	wantNext := time.Date(2026, time.February, 28, 9, 0, 0, 0, time.UTC)

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindDueRulesForUpdate", ctx, nil, userID, ref).
		Return([]domain.RecurringRule{rule}, nil).Once()
	suite.mockSink.On("CreateTransactionInTx", ctx, nil, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockRepo.On("AdvanceNextRunInTx", ctx, nil, rule.RecurringID, wantNext, userID, ref).Return(nil).Once()
	suite.mockRepo.On("Commit", ctx, nil).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, nil).Return(nil).Maybe()

	processed, err := suite.service.RunDue(ctx, userID, &ref)

	suite.Require().NoError(err)
	suite.Equal(1, processed)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestRunDue_UnknownCadenceSkippedAndNotCounted() {
	ctx := context.Background()
	userID := uuid.NewString()
	broken := suite.dueRule(userID, domain.Cadence("YEARLY"), suite.now.Add(-time.Hour))
	daily := suite.dueRule(userID, domain.Daily, suite.now.Add(-time.Hour))

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindDueRulesForUpdate", ctx, nil, userID, suite.now).
		Return([]domain.RecurringRule{broken, daily}, nil).Once()
	suite.mockSink.On("CreateTransactionInTx", ctx, nil, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockRepo.On("AdvanceNextRunInTx", ctx, nil, daily.RecurringID, daily.NextRunAt.Add(24*time.Hour), userID, suite.now).Return(nil).Once()
	suite.mockRepo.On("Commit", ctx, nil).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, nil).Return(nil).Maybe()

	processed, err := suite.service.RunDue(ctx, userID, nil)

	suite.Require().NoError(err)
	suite.Equal(1, processed)
	// The broken rule must not advance.
	suite.mockRepo.AssertNotCalled(suite.T(), "AdvanceNextRunInTx", ctx, nil, broken.RecurringID, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockSink.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestRunDue_SinkFailureRollsBackWholeBatch() {
	ctx := context.Background()
	userID := uuid.NewString()
	first := suite.dueRule(userID, domain.Daily, suite.now.Add(-2*time.Hour))
	second := suite.dueRule(userID, domain.Daily, suite.now.Add(-time.Hour))

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindDueRulesForUpdate", ctx, nil, userID, suite.now).
		Return([]domain.RecurringRule{first, second}, nil).Once()
	suite.mockSink.On("CreateTransactionInTx", ctx, nil, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockRepo.On("AdvanceNextRunInTx", ctx, nil, first.RecurringID, mock.Anything, userID, suite.now).Return(nil).Once()
	suite.mockSink.On("CreateTransactionInTx", ctx, nil, mock.AnythingOfType("domain.Transaction")).Return(fmt.Errorf("insert failed")).Once()
	suite.mockRepo.On("Rollback", ctx, nil).Return(nil).Once()

	processed, err := suite.service.RunDue(ctx, userID, nil)

	suite.Require().Error(err)
	suite.Equal(0, processed)
	suite.mockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestRunDue_ExplicitReferenceOverridesClock() {
	ctx := context.Background()
	userID := uuid.NewString()
	ref := suite.now.Add(-30 * 24 * time.Hour)

	suite.mockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockRepo.On("FindDueRulesForUpdate", ctx, nil, userID, ref).Return([]domain.RecurringRule{}, nil).Once()
	suite.mockRepo.On("Commit", ctx, nil).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, nil).Return(nil).Maybe()

	processed, err := suite.service.RunDue(ctx, userID, &ref)

	suite.Require().NoError(err)
	suite.Equal(0, processed)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- CreateRecurringRule ---

func (suite *RecurringServiceTestSuite) TestCreateRecurringRule_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateRecurringRequest{
		CategoryID:      categoryID,
		Amount:          decimal.NewFromInt(50),
		TransactionType: domain.Expense,
		Cadence:         domain.Monthly,
		NextRunAt:       suite.now.Add(24 * time.Hour),
		Note:            "gym",
	}

	suite.mockCats.On("FindCategoryByID", ctx, userID, categoryID).
		Return(&domain.Category{CategoryID: categoryID, UserID: userID, Name: "Health"}, nil).Once()
	suite.mockRepo.On("SaveRecurringRule", ctx, mock.AnythingOfType("domain.RecurringRule")).Return(nil).Once()

	rule, err := suite.service.CreateRecurringRule(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(rule)
	suite.NotEmpty(rule.RecurringID)
	suite.Equal(domain.Monthly, rule.Cadence)
	suite.Equal(userID, rule.CreatedBy)
	suite.True(rule.NextRunAt.Equal(req.NextRunAt.UTC()))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCats.AssertExpectations(suite.T())
}

func (suite *RecurringServiceTestSuite) TestCreateRecurringRule_UnknownCategory() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateRecurringRequest{
		CategoryID:      uuid.NewString(),
		Amount:          decimal.NewFromInt(50),
		TransactionType: domain.Expense,
		Cadence:         domain.Daily,
		NextRunAt:       suite.now,
	}

	suite.mockCats.On("FindCategoryByID", ctx, userID, req.CategoryID).
		Return(nil, apperrors.ErrNotFound).Once()

	rule, err := suite.service.CreateRecurringRule(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(rule)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRecurringRule", mock.Anything, mock.Anything)
}

func (suite *RecurringServiceTestSuite) TestCreateRecurringRule_ArchivedAccountRejected() {
	ctx := context.Background()
	userID := uuid.NewString()
	accountID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateRecurringRequest{
		AccountID:       &accountID,
		CategoryID:      categoryID,
		Amount:          decimal.NewFromInt(10),
		TransactionType: domain.Expense,
		Cadence:         domain.Weekly,
		NextRunAt:       suite.now,
	}

	suite.mockCats.On("FindCategoryByID", ctx, userID, categoryID).
		Return(&domain.Category{CategoryID: categoryID, UserID: userID}, nil).Once()
	suite.mockAccounts.On("FindAccountByID", ctx, userID, accountID).
		Return(&domain.Account{AccountID: accountID, UserID: userID, IsArchived: true}, nil).Once()

	rule, err := suite.service.CreateRecurringRule(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(rule)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRecurringRule", mock.Anything, mock.Anything)
}

func TestRecurringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringServiceTestSuite))
}
