package repositories

import (
	"context"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// RecurringReader defines read operations for recurring rules
type RecurringReader interface {
	// FindRecurringRuleByID retrieves one rule owned by userID.
	FindRecurringRuleByID(ctx context.Context, userID string, recurringID string) (*domain.RecurringRule, error)

	// ListRecurringRules retrieves all of the user's non-deleted rules
	// ordered by next run time.
	ListRecurringRules(ctx context.Context, userID string) ([]domain.RecurringRule, error)
}

// RecurringWriter defines write operations for recurring rules
type RecurringWriter interface {
	// SaveRecurringRule persists a new rule.
	SaveRecurringRule(ctx context.Context, rule domain.RecurringRule) error

	// MarkRecurringRuleDeleted soft-deletes a rule.
	MarkRecurringRuleDeleted(ctx context.Context, userID string, recurringID string, deletedAt time.Time, deletedBy string) error
}

// RecurringDueRunner defines the in-transaction operations the due-run
// processor needs. Rows are locked FOR UPDATE so concurrent runs for the
// same owner serialize instead of double-firing.
type RecurringDueRunner interface {
	// FindDueRulesForUpdate selects and locks the user's non-deleted rules
	// with next_run_at <= asOf, ordered by next_run_at then recurring_id.
	FindDueRulesForUpdate(ctx context.Context, tx pgx.Tx, userID string, asOf time.Time) ([]domain.RecurringRule, error)

	// AdvanceNextRunInTx moves one rule's next_run_at within tx.
	AdvanceNextRunInTx(ctx context.Context, tx pgx.Tx, recurringID string, nextRunAt time.Time, updatedBy string, updatedAt time.Time) error
}

// RecurringRepositoryFacade combines all recurring repository interfaces
type RecurringRepositoryFacade interface {
	RecurringReader
	RecurringWriter
	RecurringDueRunner
}

// RecurringRepositoryWithTx extends the facade with transaction management so
// the processor can commit the whole due batch atomically.
type RecurringRepositoryWithTx interface {
	RecurringRepositoryFacade
	TransactionManager
}
