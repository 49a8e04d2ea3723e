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

type tagService struct {
	BaseService
	tagRepo portsrepo.TagRepositoryFacade
}

// NewTagService creates a new tag service
func NewTagService(tagRepo portsrepo.TagRepositoryFacade) portssvc.TagSvcFacade {
	return &tagService{tagRepo: tagRepo}
}

var _ portssvc.TagSvcFacade = (*tagService)(nil)

func (s *tagService) CreateTag(ctx context.Context, userID string, req dto.CreateTagRequest) (*domain.Tag, error) {
	now := time.Now().UTC()
	tag := domain.Tag{
		TagID:  uuid.NewString(),
		UserID: userID,
		Name:   req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.tagRepo.SaveTag(ctx, tag); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		s.LogError(ctx, err, "Failed to create tag")
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	s.LogInfo(ctx, "Tag created", "tag_id", tag.TagID)
	return &tag, nil
}

func (s *tagService) ListTags(ctx context.Context, userID string, search string, limit, offset int) ([]domain.Tag, int, error) {
	tags, err := s.tagRepo.ListTags(ctx, userID, search, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tags")
		return nil, 0, fmt.Errorf("failed to list tags: %w", err)
	}
	total, err := s.tagRepo.CountTags(ctx, userID, search)
	if err != nil {
		s.LogError(ctx, err, "Failed to count tags")
		return nil, 0, fmt.Errorf("failed to count tags: %w", err)
	}
	return tags, total, nil
}

func (s *tagService) DeleteTag(ctx context.Context, userID string, tagID string) error {
	now := time.Now().UTC()
	if err := s.tagRepo.MarkTagDeleted(ctx, userID, tagID, now, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to delete tag", "tag_id", tagID)
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	s.LogInfo(ctx, "Tag deleted", "tag_id", tagID)
	return nil
}
