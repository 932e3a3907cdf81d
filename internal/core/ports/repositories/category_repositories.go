package repositories

import (
	"context"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// CategoryReader defines read operations for letter categories
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its ID.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoryByCode retrieves a category by its unique code.
	FindCategoryByCode(ctx context.Context, code string) (*domain.Category, error)

	// FindCategories retrieves all categories ordered by name.
	FindCategories(ctx context.Context) ([]domain.Category, error)

	// CountCategoryReferences counts letters and templates referencing the category.
	CountCategoryReferences(ctx context.Context, categoryID string) (int64, error)
}

// CategoryWriter defines write operations for letter categories
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
