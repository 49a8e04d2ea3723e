package services

import (
	"context"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
)

// CategorySvcFacade defines operations for managing categories
type CategorySvcFacade interface {
	// CreateCategory creates a new category for the user.
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves a category owned by the user.
	GetCategoryByID(ctx context.Context, userID string, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all of the user's categories.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, userID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory marks a category as deleted (soft delete).
	DeleteCategory(ctx context.Context, userID string, categoryID string) error
}
