package dto

import (
	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateCategoryRequest renames a category.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
}

// ListCategoriesResponse wraps the user's categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category to a CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{CategoryID: c.CategoryID, Name: c.Name}
}

// ToListCategoriesResponse converts domain Categories to the list DTO
func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	resp := ListCategoriesResponse{Categories: make([]CategoryResponse, len(categories))}
	for i := range categories {
		resp.Categories[i] = ToCategoryResponse(&categories[i])
	}
	return resp
}
