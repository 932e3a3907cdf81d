package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, requestingUserID string) (*domain.Category, error) {
	existing, err := s.categoryRepo.FindCategoryByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing category code", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to check for existing category: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("category code %s is already in use: %w", req.Code, apperrors.ErrDuplicate)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID), slog.String("code", category.Code))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category by ID", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Name != nil && *req.Name != category.Name {
		category.Name = *req.Name
		changed = true
	}
	if req.Code != nil && *req.Code != category.Code {
		existing, err := s.categoryRepo.FindCategoryByCode(ctx, *req.Code)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check for existing category: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("category code %s is already in use: %w", *req.Code, apperrors.ErrDuplicate)
		}
		category.Code = *req.Code
		changed = true
	}
	if req.Description != nil && *req.Description != category.Description {
		category.Description = *req.Description
		changed = true
	}

	if !changed {
		return category, nil
	}

	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = requestingUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated", slog.String("category_id", categoryID))
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	refs, err := s.categoryRepo.CountCategoryReferences(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count category references", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to count category references: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("category is referenced by %d records: %w", refs, apperrors.ErrConflict)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		}
		return err
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
