package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/apperrors"
	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	portsrepo "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/repositories"
	portssvc "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/services"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
	"github.com/google/uuid"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		UserID:         userID,
		Name:           req.Name,
		AccountType:    req.AccountType,
		CurrencyCode:   req.CurrencyCode,
		OpeningBalance: req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		s.LogError(ctx, err, "Failed to create account")
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created", "account_id", account.AccountID)
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to get account", "account_id", accountID)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string, limit, offset int) ([]domain.Account, int, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}
	total, err := s.accountRepo.CountAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count accounts")
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return accounts, total, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
	}
	now := time.Now().UTC()
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID

	// SaveAccount upserts on account_id, so reuse it for the update path.
	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		s.LogError(ctx, err, "Failed to update account", "account_id", accountID)
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

func (s *accountService) ArchiveAccount(ctx context.Context, userID string, accountID string) error {
	now := time.Now().UTC()
	if err := s.accountRepo.MarkAccountArchived(ctx, userID, accountID, userID, now); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to archive account", "account_id", accountID)
		return fmt.Errorf("failed to archive account: %w", err)
	}
	s.LogInfo(ctx, "Account archived", "account_id", accountID)
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	now := time.Now().UTC()
	if err := s.accountRepo.MarkAccountDeleted(ctx, userID, accountID, now, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to delete account", "account_id", accountID)
		return fmt.Errorf("failed to delete account: %w", err)
	}
	s.LogInfo(ctx, "Account deleted", "account_id", accountID)
	return nil
}
