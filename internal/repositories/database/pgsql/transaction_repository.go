package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/apperrors"
	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	portsrepo "github.com/bilalcinal/WhereDoUSpend/internal/core/ports/repositories"
	"github.com/bilalcinal/WhereDoUSpend/internal/models"
	"github.com/bilalcinal/WhereDoUSpend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `t.transaction_id, t.user_id, t.amount, t.transaction_type, t.date, t.note, t.account_id, t.category_id, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by, t.deleted_at`

const insertTransactionQuery = `
	INSERT INTO transactions (transaction_id, user_id, amount, transaction_type, date, note, account_id, category_id, created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Amount,
		&m.TransactionType,
		&m.Date,
		&m.Note,
		&m.AccountID,
		&m.CategoryID,
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

func insertTransactionArgs(m models.Transaction) []any {
	return []any{
		m.TransactionID,
		m.UserID,
		m.Amount,
		m.TransactionType,
		m.Date,
		m.Note,
		m.AccountID,
		m.CategoryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

// filterClauses appends the WHERE conditions of a TransactionFilter to args
// and returns the SQL fragment. The caller has already bound user_id as $1.
func filterClauses(filter portsrepo.TransactionFilter, args *[]any) string {
	clause := ""
	if filter.From != nil {
		*args = append(*args, *filter.From)
		clause += " AND t.date >= $" + strconv.Itoa(len(*args))
	}
	if filter.To != nil {
		*args = append(*args, *filter.To)
		clause += " AND t.date <= $" + strconv.Itoa(len(*args))
	}
	if filter.AccountID != nil {
		*args = append(*args, *filter.AccountID)
		clause += " AND t.account_id = $" + strconv.Itoa(len(*args))
	}
	if filter.CategoryID != nil {
		*args = append(*args, *filter.CategoryID)
		clause += " AND t.category_id = $" + strconv.Itoa(len(*args))
	}
	return clause
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, tagIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)
	if _, err := tx.Exec(ctx, insertTransactionQuery, insertTransactionArgs(m)...); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	if err := insertTagLinks(ctx, tx, m.TransactionID, tagIDs); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertTagLinks(ctx context.Context, tx pgx.Tx, transactionID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, tagID := range tagIDs {
		batch.Queue(`INSERT INTO transaction_tags (transaction_id, tag_id) VALUES ($1, $2);`, transactionID, tagID)
	}
	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for range tagIDs {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to link tag to transaction %s: %w", transactionID, err)
		}
	}
	return nil
}

// CreateTransactionInTx inserts one transaction within an externally owned tx.
func (r *PgxTransactionRepository) CreateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	if _, err := tx.Exec(ctx, insertTransactionQuery, insertTransactionArgs(m)...); err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `, a.name, c.name
		FROM transactions t
		LEFT JOIN accounts a ON t.account_id = a.account_id
		LEFT JOIN categories c ON t.category_id = c.category_id
		WHERE t.transaction_id = $1 AND t.user_id = $2 AND t.deleted_at IS NULL;
	`
	var m models.Transaction
	var accountName, categoryName *string
	err := r.Pool.QueryRow(ctx, query, transactionID, userID).Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Amount,
		&m.TransactionType,
		&m.Date,
		&m.Note,
		&m.AccountID,
		&m.CategoryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
		&accountName,
		&categoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	d.AccountName = accountName
	d.CategoryName = categoryName

	tags, err := r.findTagsForTransactions(ctx, []string{d.TransactionID})
	if err != nil {
		return nil, err
	}
	d.Tags = tags[d.TransactionID]
	return &d, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := []any{userID}
	query := `
		SELECT ` + transactionColumns + `, a.name, c.name
		FROM transactions t
		LEFT JOIN accounts a ON t.account_id = a.account_id
		LEFT JOIN categories c ON t.category_id = c.category_id
		WHERE t.user_id = $1 AND t.deleted_at IS NULL`
	query += filterClauses(filter, &args)

	order := " ORDER BY t.date DESC, t.transaction_id DESC"
	if filter.DateAsc {
		order = " ORDER BY t.date ASC, t.transaction_id ASC"
	}
	args = append(args, filter.Limit)
	limitClause := " LIMIT $" + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	offsetClause := " OFFSET $" + strconv.Itoa(len(args))
	query += order + limitClause + offsetClause + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var ds []domain.Transaction
	var ids []string
	for rows.Next() {
		var m models.Transaction
		var accountName, categoryName *string
		if err := rows.Scan(
			&m.TransactionID,
			&m.UserID,
			&m.Amount,
			&m.TransactionType,
			&m.Date,
			&m.Note,
			&m.AccountID,
			&m.CategoryID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.DeletedAt,
			&accountName,
			&categoryName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		d := mapping.ToDomainTransaction(m)
		d.AccountName = accountName
		d.CategoryName = categoryName
		ds = append(ds, d)
		ids = append(ids, d.TransactionID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	tagsByTxn, err := r.findTagsForTransactions(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range ds {
		ds[i].Tags = tagsByTxn[ds[i].TransactionID]
	}
	return ds, nil
}

func (r *PgxTransactionRepository) CountTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) (int, error) {
	args := []any{userID}
	query := `SELECT COUNT(*) FROM transactions t WHERE t.user_id = $1 AND t.deleted_at IS NULL`
	query += filterClauses(filter, &args) + ";"

	var count int
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// findTagsForTransactions loads the tags linked to each of the given
// transactions in one query.
func (r *PgxTransactionRepository) findTagsForTransactions(ctx context.Context, transactionIDs []string) (map[string][]domain.Tag, error) {
	result := make(map[string][]domain.Tag, len(transactionIDs))
	if len(transactionIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT tt.transaction_id, tags.tag_id, tags.user_id, tags.name, tags.created_at, tags.created_by, tags.last_updated_at, tags.last_updated_by, tags.deleted_at
		FROM transaction_tags tt
		JOIN tags ON tags.tag_id = tt.tag_id
		WHERE tt.transaction_id = ANY($1) AND tags.deleted_at IS NULL
		ORDER BY tags.name;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var transactionID string
		var m models.Tag
		if err := rows.Scan(
			&transactionID,
			&m.TagID,
			&m.UserID,
			&m.Name,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction tag row: %w", err)
		}
		result[transactionID] = append(result[transactionID], mapping.ToDomainTag(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction tag rows: %w", err)
	}
	return result, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, tagIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET amount = $3, transaction_type = $4, date = $5, note = $6, account_id = $7, category_id = $8, last_updated_at = $9, last_updated_by = $10
		WHERE transaction_id = $1 AND user_id = $2 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Amount,
		m.TransactionType,
		m.Date,
		m.Note,
		m.AccountID,
		m.CategoryID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Replace the tag set wholesale
	if _, err := tx.Exec(ctx, `DELETE FROM transaction_tags WHERE transaction_id = $1;`, m.TransactionID); err != nil {
		return fmt.Errorf("failed to clear tags for transaction %s: %w", m.TransactionID, err)
	}
	if err := insertTagLinks(ctx, tx, m.TransactionID, tagIDs); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTransactionRepository) MarkTransactionDeleted(ctx context.Context, userID string, transactionID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE transactions
		SET deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1 AND user_id = $2 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, userID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark transaction %s deleted: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
