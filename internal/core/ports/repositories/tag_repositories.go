package repositories

import (
	"context"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
)

// TagRepositoryFacade defines persistence operations for tags.
type TagRepositoryFacade interface {
	// SaveTag persists a new tag.
	SaveTag(ctx context.Context, tag domain.Tag) error

	// FindTagByName retrieves a tag by its per-user unique name.
	FindTagByName(ctx context.Context, userID string, name string) (*domain.Tag, error)

	// FindTagsByIDs retrieves the subset of the given tag IDs owned by userID.
	FindTagsByIDs(ctx context.Context, userID string, tagIDs []string) ([]domain.Tag, error)

	// ListTags retrieves tags ordered by name, optionally filtered by a
	// case-insensitive substring search.
	ListTags(ctx context.Context, userID string, search string, limit int, offset int) ([]domain.Tag, error)

	// CountTags returns the number of tags matching the search.
	CountTags(ctx context.Context, userID string, search string) (int, error)

	// MarkTagDeleted soft-deletes a tag and detaches it from all transactions,
	// atomically.
	MarkTagDeleted(ctx context.Context, userID string, tagID string, deletedAt time.Time, deletedBy string) error
}
