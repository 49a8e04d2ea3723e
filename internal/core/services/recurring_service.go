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

type recurringService struct {
	BaseService
	recurringRepo   portsrepo.RecurringRepositoryWithTx
	transactionSink portsrepo.TransactionSink
	accountRepo     portsrepo.AccountRepositoryFacade
	categoryRepo    portsrepo.CategoryRepositoryFacade
	clock           domain.Clock
}

// RecurringServiceOption is a functional option for configuring the recurring service
type RecurringServiceOption func(*recurringService)

// WithClock overrides the clock used to resolve the default reference instant.
func WithClock(clock domain.Clock) RecurringServiceOption {
	return func(s *recurringService) {
		s.clock = clock
	}
}

// NewRecurringService creates a new recurring service with the provided options
func NewRecurringService(
	recurringRepo portsrepo.RecurringRepositoryWithTx,
	transactionSink portsrepo.TransactionSink,
	accountRepo portsrepo.AccountRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	options ...RecurringServiceOption,
) portssvc.RecurringSvcFacade {
	svc := &recurringService{
		recurringRepo:   recurringRepo,
		transactionSink: transactionSink,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		clock:           domain.SystemClock{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) CreateRecurringRule(ctx context.Context, userID string, req dto.CreateRecurringRequest) (*domain.RecurringRule, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(400, "category not found", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to validate recurring rule category: %w", err)
	}
	if req.AccountID != nil {
		account, err := s.accountRepo.FindAccountByID(ctx, userID, *req.AccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewAppError(400, "account not found", apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to validate recurring rule account: %w", err)
		}
		if account.IsArchived {
			return nil, apperrors.NewAppError(400, "account is archived", apperrors.ErrValidation)
		}
	}

	now := time.Now().UTC()
	rule := domain.RecurringRule{
		RecurringID:     uuid.NewString(),
		UserID:          userID,
		AccountID:       req.AccountID,
		CategoryID:      req.CategoryID,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Cadence:         req.Cadence,
		NextRunAt:       req.NextRunAt.UTC(),
		Note:            req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.recurringRepo.SaveRecurringRule(ctx, rule); err != nil {
		s.LogError(ctx, err, "Failed to create recurring rule")
		return nil, fmt.Errorf("failed to create recurring rule: %w", err)
	}

	s.LogInfo(ctx, "Recurring rule created", "recurring_id", rule.RecurringID)
	return &rule, nil
}

func (s *recurringService) GetRecurringRuleByID(ctx context.Context, userID string, recurringID string) (*domain.RecurringRule, error) {
	rule, err := s.recurringRepo.FindRecurringRuleByID(ctx, userID, recurringID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to get recurring rule", "recurring_id", recurringID)
		return nil, fmt.Errorf("failed to get recurring rule: %w", err)
	}
	return rule, nil
}

func (s *recurringService) ListRecurringRules(ctx context.Context, userID string) ([]domain.RecurringRule, error) {
	rules, err := s.recurringRepo.ListRecurringRules(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring rules")
		return nil, fmt.Errorf("failed to list recurring rules: %w", err)
	}
	return rules, nil
}

func (s *recurringService) DeleteRecurringRule(ctx context.Context, userID string, recurringID string) error {
	now := time.Now().UTC()
	if err := s.recurringRepo.MarkRecurringRuleDeleted(ctx, userID, recurringID, now, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to delete recurring rule", "recurring_id", recurringID)
		return fmt.Errorf("failed to delete recurring rule: %w", err)
	}
	s.LogInfo(ctx, "Recurring rule deleted", "recurring_id", recurringID)
	return nil
}

// RunDue materializes one transaction for each of the user's due rules and
// advances each rule a single cadence step. The whole batch (inserts plus
// next_run_at updates) commits atomically: any failure rolls everything back
// and no rule advances.
//
// Due rows are locked FOR UPDATE inside the transaction, so a concurrent run
// for the same owner waits for the commit and then sees no remaining due
// rules; the same rule never fires twice for one due instant. A rule left
// with a cadence outside the known set is skipped with a warning, keeps its
// NextRunAt, and does not count toward the result.
func (s *recurringService) RunDue(ctx context.Context, userID string, ref *time.Time) (int, error) {
	reference := s.clock.Now()
	if ref != nil {
		reference = ref.UTC()
	}

	tx, err := s.recurringRepo.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin due run: %w", err)
	}
	defer s.recurringRepo.Rollback(ctx, tx)

	dueRules, err := s.recurringRepo.FindDueRulesForUpdate(ctx, tx, userID, reference)
	if err != nil {
		return 0, fmt.Errorf("failed to find due rules: %w", err)
	}

	processed := 0
	for _, rule := range dueRules {
		next, ok := rule.Cadence.NextAfter(rule.NextRunAt)
		if !ok {
			s.LogWarn(ctx, "Skipping recurring rule with unknown cadence",
				"recurring_id", rule.RecurringID,
				"cadence", string(rule.Cadence))
			continue
		}

		txn := rule.Materialize(reference)
		txn.TransactionID = uuid.NewString()
		txn.CreatedAt = reference
		txn.CreatedBy = userID
		txn.LastUpdatedAt = reference
		txn.LastUpdatedBy = userID

		if err := s.transactionSink.CreateTransactionInTx(ctx, tx, txn); err != nil {
			return 0, fmt.Errorf("failed to materialize recurring rule %s: %w", rule.RecurringID, err)
		}
		if err := s.recurringRepo.AdvanceNextRunInTx(ctx, tx, rule.RecurringID, next, userID, reference); err != nil {
			return 0, fmt.Errorf("failed to advance recurring rule %s: %w", rule.RecurringID, err)
		}
		processed++
	}

	if err := s.recurringRepo.Commit(ctx, tx); err != nil {
		return 0, fmt.Errorf("failed to commit due run: %w", err)
	}

	s.LogInfo(ctx, "Due run completed",
		"reference", reference.Format(time.RFC3339),
		"due_rules", len(dueRules),
		"processed", processed)
	return processed, nil
}
