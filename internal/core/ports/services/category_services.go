package services

import (
	"context"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

// CategoryReaderSvc defines read operations for letter categories
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a category by ID.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for letter categories
type CategoryWriterSvc interface {
	// CreateCategory creates a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, requestingUserID string) (*domain.Category, error)

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error)

	// DeleteCategory removes a category. Fails with ErrConflict while letters
	// or templates still reference it.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
