package dto

import (
	"time"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new letter category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required,max=20,lettercode"`
	Description string `json:"description"` // Optional
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code" binding:"omitempty,max=20,lettercode"`
	Description *string `json:"description"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string    `json:"categoryID"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    cat.CategoryID,
		Name:          cat.Name,
		Code:          cat.Code,
		Description:   cat.Description,
		CreatedAt:     cat.CreatedAt,
		CreatedBy:     cat.CreatedBy,
		LastUpdatedAt: cat.LastUpdatedAt,
		LastUpdatedBy: cat.LastUpdatedBy,
	}
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToListCategoriesResponse converts a slice of domain.Category to ListCategoriesResponse DTO
func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return ListCategoriesResponse{Categories: res}
}
