package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/apperrors"
	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	portssvc "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/core/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
	"github.com/bilalcinal/WhereDoUSpend/internal/platform/config"
	"github.com/bilalcinal/WhereDoUSpend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserService is a mock type for the UserSvcFacade interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateGoogleUser(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite Setup ---

type TokenServiceTestSuite struct {
	suite.Suite
	mockUsers *MockUserService
	cfg       *config.Config
	service   portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockUsers = new(MockUserService)
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret-key-that-is-long-enough",
		JWTIssuer:                  "wdus-test",
		JWTExpiryDuration:          15 * time.Minute,
		RefreshTokenExpiryDuration: 24 * time.Hour,
	}
	suite.service = services.NewTokenService(suite.cfg, suite.mockUsers)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

// --- Test Cases ---

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_ClaimsRoundTrip() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	token, expiry, err := suite.service.GenerateAccessToken(ctx, user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(suite.cfg.JWTExpiryDuration), expiry, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RejectedWithWrongSecret() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	token, _, err := suite.service.GenerateAccessToken(ctx, user)
	suite.Require().NoError(err)

	_, err = utils.ParseAndValidateJWT(token, "a-different-secret")
	suite.Error(err)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Valid() {
	ctx := context.Background()
	userID := uuid.NewString()
	rawToken := "raw-refresh-token"
	expiry := time.Now().Add(time.Hour)
	user := &domain.User{
		UserID:                 userID,
		RefreshTokenHash:       utils.HashRefreshToken(rawToken),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUsers.On("GetUserByID", ctx, userID).Return(user, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, rawToken)

	suite.Require().NoError(err)
	suite.Equal(userID, got.UserID)
	suite.mockUsers.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_UnknownUser() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUsers.On("GetUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, "whatever")

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_NoStoredToken() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID}

	suite.mockUsers.On("GetUserByID", ctx, userID).Return(user, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, "whatever")

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	userID := uuid.NewString()
	rawToken := "raw-refresh-token"
	expiry := time.Now().Add(-time.Minute)
	user := &domain.User{
		UserID:                 userID,
		RefreshTokenHash:       utils.HashRefreshToken(rawToken),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUsers.On("GetUserByID", ctx, userID).Return(user, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, rawToken)

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_HashMismatch() {
	ctx := context.Background()
	userID := uuid.NewString()
	expiry := time.Now().Add(time.Hour)
	user := &domain.User{
		UserID:                 userID,
		RefreshTokenHash:       utils.HashRefreshToken("the-real-token"),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUsers.On("GetUserByID", ctx, userID).Return(user, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, "a-stolen-guess")

	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}
