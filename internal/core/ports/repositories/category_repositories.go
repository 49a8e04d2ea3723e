package repositories

import (
	"context"
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence operations for categories,
// always scoped to the owning user.
type CategoryRepositoryFacade interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// FindCategoryByID retrieves one category owned by userID.
	FindCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all of the user's categories ordered by name.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// UpdateCategory updates a category's name.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// MarkCategoryDeleted soft-deletes a category.
	MarkCategoryDeleted(ctx context.Context, userID string, categoryID string, deletedAt time.Time, deletedBy string) error
}
