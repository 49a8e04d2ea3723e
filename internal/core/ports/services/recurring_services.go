package services

import (
	"context"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
)

// RecurringReaderSvc defines read operations for recurring rules
type RecurringReaderSvc interface {
	// GetRecurringRuleByID retrieves a recurring rule owned by the user.
	GetRecurringRuleByID(ctx context.Context, userID string, recurringID string) (*domain.RecurringRule, error)

	// ListRecurringRules retrieves all of the user's recurring rules.
	ListRecurringRules(ctx context.Context, userID string) ([]domain.RecurringRule, error)
}

// RecurringWriterSvc defines write operations for recurring rules
type RecurringWriterSvc interface {
	// CreateRecurringRule creates a new recurring rule for the user.
	CreateRecurringRule(ctx context.Context, userID string, req dto.CreateRecurringRequest) (*domain.RecurringRule, error)

	// DeleteRecurringRule marks a recurring rule as deleted (soft delete).
	DeleteRecurringRule(ctx context.Context, userID string, recurringID string) error
}

// RecurringDueRunnerSvc materializes due recurring rules into transactions
type RecurringDueRunnerSvc interface {
	// RunDue materializes one transaction for each of the user's rules whose
	// NextRunAt is at or before the reference instant, advancing each rule one
	// cadence step, all within a single database transaction. When ref is nil
	// the current time is used. It returns the number of transactions created.
	RunDue(ctx context.Context, userID string, ref *time.Time) (int, error)
}

// RecurringSvcFacade combines all recurring-rule service interfaces
type RecurringSvcFacade interface {
	RecurringReaderSvc
	RecurringWriterSvc
	RecurringDueRunnerSvc
}
