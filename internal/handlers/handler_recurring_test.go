package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/apperrors"
	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	portssvc "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
	"github.com/bilalcinal/WhereDoUSpend/internal/handlers"
	"github.com/bilalcinal/WhereDoUSpend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RecurringService ---
type MockRecurringService struct {
	mock.Mock
}

func (m *MockRecurringService) CreateRecurringRule(ctx context.Context, userID string, req dto.CreateRecurringRequest) (*domain.RecurringRule, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringService) GetRecurringRuleByID(ctx context.Context, userID string, recurringID string) (*domain.RecurringRule, error) {
	args := m.Called(ctx, userID, recurringID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringService) ListRecurringRules(ctx context.Context, userID string) ([]domain.RecurringRule, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringRule), args.Error(1)
}

func (m *MockRecurringService) DeleteRecurringRule(ctx context.Context, userID string, recurringID string) error {
	args := m.Called(ctx, userID, recurringID)
	return args.Error(0)
}

func (m *MockRecurringService) RunDue(ctx context.Context, userID string, ref *time.Time) (int, error) {
	args := m.Called(ctx, userID, ref)
	return args.Int(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.RecurringSvcFacade = (*MockRecurringService)(nil)

// --- Test Suite ---
type RecurringHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockRecurringService *MockRecurringService
	jwtSecret            string
}

// generateTestToken creates a signed JWT accepted by the auth middleware.
func (suite *RecurringHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "wdus-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *RecurringHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockRecurringService = new(MockRecurringService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterRecurringRoutes(v1, suite.mockRecurringService)
}

// --- Test Cases ---

func (suite *RecurringHandlerTestSuite) TestRunDue_EmptyBodyUsesCurrentTime() {
	userID := uuid.NewString()

	suite.mockRecurringService.On("RunDue",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		(*time.Time)(nil),
	).Return(3, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/recurring/run-due", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.RunDueResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.NoError(err, "Failed to unmarshal response body")
	suite.Equal(3, body.Created)

	suite.mockRecurringService.AssertExpectations(suite.T())
}

func (suite *RecurringHandlerTestSuite) TestRunDue_ReferenceInstantPassedThrough() {
	userID := uuid.NewString()
	ref := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRecurringService.On("RunDue",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		mock.MatchedBy(func(t *time.Time) bool {
			return t != nil && t.Equal(ref)
		}),
	).Return(1, nil).Once()

	payload := `{"referenceInstant":"2026-02-01T00:00:00Z"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/recurring/run-due", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.RunDueResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.NoError(err)
	suite.Equal(1, body.Created)

	suite.mockRecurringService.AssertExpectations(suite.T())
}

func (suite *RecurringHandlerTestSuite) TestRunDue_MissingTokenRejected() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/recurring/run-due", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockRecurringService.AssertNotCalled(suite.T(), "RunDue")
}

func (suite *RecurringHandlerTestSuite) TestGetRecurringRule_NotFound() {
	userID := uuid.NewString()
	recurringID := uuid.NewString()

	suite.mockRecurringService.On("GetRecurringRuleByID",
		mock.AnythingOfType("*context.valueCtx"),
		userID,
		recurringID,
	).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/recurring/"+recurringID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockRecurringService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestRecurringHandler(t *testing.T) {
	suite.Run(t, new(RecurringHandlerTestSuite))
}
