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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTagRepository struct {
	BaseRepository
}

func newPgxTagRepository(pool *pgxpool.Pool) portsrepo.TagRepositoryFacade {
	return &PgxTagRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TagRepositoryFacade = (*PgxTagRepository)(nil)

const tagColumns = `tag_id, user_id, name, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanTag(row pgx.Row) (*models.Tag, error) {
	var m models.Tag
	err := row.Scan(
		&m.TagID,
		&m.UserID,
		&m.Name,
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

func (r *PgxTagRepository) SaveTag(ctx context.Context, tag domain.Tag) error {
	m := mapping.ToModelTag(tag)
	query := `
        INSERT INTO tags (tag_id, user_id, name, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TagID,
		m.UserID,
		m.Name,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save tag: %w", err)
	}
	return nil
}

func (r *PgxTagRepository) FindTagByName(ctx context.Context, userID string, name string) (*domain.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE user_id = $1 AND name = $2 AND deleted_at IS NULL;`
	m, err := scanTag(r.Pool.QueryRow(ctx, query, userID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tag by name: %w", err)
	}
	d := mapping.ToDomainTag(*m)
	return &d, nil
}

func (r *PgxTagRepository) FindTagsByIDs(ctx context.Context, userID string, tagIDs []string) ([]domain.Tag, error) {
	if len(tagIDs) == 0 {
		return []domain.Tag{}, nil
	}
	query := `
		SELECT ` + tagColumns + `
		FROM tags
		WHERE user_id = $1 AND tag_id = ANY($2) AND deleted_at IS NULL
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, userID, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find tags by IDs: %w", err)
	}
	defer rows.Close()

	var ms []models.Tag
	for rows.Next() {
		m, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}
	return mapping.ToDomainTagSlice(ms), nil
}

func (r *PgxTagRepository) ListTags(ctx context.Context, userID string, search string, limit int, offset int) ([]domain.Tag, error) {
	query := `
		SELECT ` + tagColumns + `
		FROM tags
		WHERE user_id = $1 AND deleted_at IS NULL
			AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		ORDER BY name
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, userID, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var ms []models.Tag
	for rows.Next() {
		m, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}
	return mapping.ToDomainTagSlice(ms), nil
}

// MarkTagDeleted soft-deletes the tag and removes its transaction links in
// one database transaction.
func (r *PgxTagRepository) MarkTagDeleted(ctx context.Context, userID string, tagID string, deletedAt time.Time, deletedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE tags
		SET deleted_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE tag_id = $1 AND user_id = $2 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query, tagID, userID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark tag %s deleted: %w", tagID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transaction_tags WHERE tag_id = $1;`, tagID); err != nil {
		return fmt.Errorf("failed to detach tag %s from transactions: %w", tagID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTagRepository) CountTags(ctx context.Context, userID string, search string) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM tags
		WHERE user_id = $1 AND deleted_at IS NULL
			AND ($2 = '' OR name ILIKE '%' || $2 || '%');
	`
	if err := r.Pool.QueryRow(ctx, query, userID, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tags: %w", err)
	}
	return count, nil
}
