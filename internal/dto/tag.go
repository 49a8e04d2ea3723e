package dto

import (
	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
)

// CreateTagRequest defines the data needed to create a tag.
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// ListTagsParams defines query parameters for listing tags.
type ListTagsParams struct {
	Search   string `form:"search" binding:"omitempty,max=50"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize,default=50" binding:"omitempty,min=1,max=200"`
}

// TagResponse defines the data returned for a tag.
type TagResponse struct {
	TagID string `json:"tagID"`
	Name  string `json:"name"`
}

// ListTagsResponse wraps a page of tags with the total count.
type ListTagsResponse struct {
	Tags     []TagResponse `json:"tags"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

// ToTagResponse converts a domain Tag to a TagResponse DTO
func ToTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{TagID: t.TagID, Name: t.Name}
}

// ToListTagsResponse converts a page of domain Tags to the list DTO
func ToListTagsResponse(tags []domain.Tag, total, page, pageSize int) ListTagsResponse {
	resp := ListTagsResponse{
		Tags:     make([]TagResponse, len(tags)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range tags {
		resp.Tags[i] = ToTagResponse(&tags[i])
	}
	return resp
}
