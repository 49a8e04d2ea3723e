package services

import (
	"context"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
	"github.com/bilalcinal/WhereDoUSpend/internal/dto"
)

// TagSvcFacade defines operations for managing tags
type TagSvcFacade interface {
	// CreateTag creates a new tag for the user. Tag names are unique per user.
	CreateTag(ctx context.Context, userID string, req dto.CreateTagRequest) (*domain.Tag, error)

	// ListTags retrieves a paginated list of the user's tags with an optional
	// name search, and the total count.
	ListTags(ctx context.Context, userID string, search string, limit, offset int) ([]domain.Tag, int, error)

	// DeleteTag marks a tag as deleted (soft delete) and detaches it from transactions.
	DeleteTag(ctx context.Context, userID string, tagID string) error
}
