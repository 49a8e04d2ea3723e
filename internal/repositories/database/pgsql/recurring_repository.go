package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/apperrors"
	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	portsrepo "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/repositories"
	"github.com/bilalcinal/WhereDoUSpend/internal/models"
	"github.com/bilalcinal/WhereDoUSpend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRecurringRepository struct {
	BaseRepository
}

func newPgxRecurringRepository(pool *pgxpool.Pool) portsrepo.RecurringRepositoryWithTx {
	return &PgxRecurringRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxRecurringRepository implements portsrepo.RecurringRepositoryWithTx
var _ portsrepo.RecurringRepositoryWithTx = (*PgxRecurringRepository)(nil)

const recurringColumns = `recurring_id, user_id, account_id, category_id, amount, transaction_type, cadence, next_run_at, note, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanRecurringRule(row pgx.Row) (*models.RecurringRule, error) {
	var m models.RecurringRule
	err := row.Scan(
		&m.RecurringID,
		&m.UserID,
		&m.AccountID,
		&m.CategoryID,
		&m.Amount,
		&m.TransactionType,
		&m.Cadence,
		&m.NextRunAt,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxRecurringRepository) SaveRecurringRule(ctx context.Context, rule domain.RecurringRule) error {
	m := mapping.ToModelRecurringRule(rule)
	query := `
        INSERT INTO recurring_transactions (recurring_id, user_id, account_id, category_id, amount, transaction_type, cadence, next_run_at, note, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.RecurringID,
		m.UserID,
		m.AccountID,
		m.CategoryID,
		m.Amount,
		m.TransactionType,
		m.Cadence,
		m.NextRunAt,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save recurring rule: %w", err)
	}
	return nil
}

func (r *PgxRecurringRepository) FindRecurringRuleByID(ctx context.Context, userID string, recurringID string) (*domain.RecurringRule, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_transactions WHERE recurring_id = $1 AND user_id = $2 AND deleted_at IS NULL;`
	m, err := scanRecurringRule(r.Pool.QueryRow(ctx, query, recurringID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recurring rule by ID %s: %w", recurringID, err)
	}
	d := mapping.ToDomainRecurringRule(*m)
	return &d, nil
}

func (r *PgxRecurringRepository) ListRecurringRules(ctx context.Context, userID string) ([]domain.RecurringRule, error) {
	query := `
		SELECT ` + recurringColumns + `
		FROM recurring_transactions
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY next_run_at, recurring_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring rules: %w", err)
	}
	defer rows.Close()

	var ms []models.RecurringRule
	for rows.Next() {
		m, err := scanRecurringRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring rule row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring rule rows: %w", err)
	}
	return mapping.ToDomainRecurringRuleSlice(ms), nil
}

// FindDueRulesForUpdate selects and locks the user's due rules inside tx.
// The FOR UPDATE lock makes concurrent due runs for the same owner queue up
// behind each other rather than materialize the same rule twice.
func (r *PgxRecurringRepository) FindDueRulesForUpdate(ctx context.Context, tx pgx.Tx, userID string, asOf time.Time) ([]domain.RecurringRule, error) {
	query := `
		SELECT ` + recurringColumns + `
		FROM recurring_transactions
		WHERE user_id = $1 AND next_run_at <= $2 AND deleted_at IS NULL
		ORDER BY next_run_at, recurring_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, userID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to lock due recurring rules: %w", err)
	}
	defer rows.Close()

	var ms []models.RecurringRule
	for rows.Next() {
		m, err := scanRecurringRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due recurring rule row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating due recurring rule rows: %w", err)
	}
	return mapping.ToDomainRecurringRuleSlice(ms), nil
}

// AdvanceNextRunInTx moves one rule's next_run_at within an externally owned tx.
func (r *PgxRecurringRepository) AdvanceNextRunInTx(ctx context.Context, tx pgx.Tx, recurringID string, nextRunAt time.Time, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE recurring_transactions
		SET next_run_at = $2, last_updated_at = $3, last_updated_by = $4
		WHERE recurring_id = $1 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query, recurringID, nextRunAt, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to advance recurring rule %s: %w", recurringID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRecurringRepository) MarkRecurringRuleDeleted(ctx context.Context, userID string, recurringID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE recurring_transactions
		SET deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE recurring_id = $1 AND user_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, recurringID, userID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark recurring rule %s deleted: %w", recurringID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
