package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

// templateService implements the TemplateSvcFacade interface
type templateService struct {
	BaseService
	templateRepo portsrepo.TemplateRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo portsrepo.TemplateRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.TemplateSvcFacade {
	return &templateService{templateRepo: templateRepo, categoryRepo: categoryRepo}
}

var _ portssvc.TemplateSvcFacade = (*templateService)(nil)

func (s *templateService) CreateTemplate(ctx context.Context, req dto.CreateTemplateRequest, requestingUserID string) (*domain.LetterTemplate, error) {
	existing, err := s.templateRepo.FindTemplateByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing template code", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to check for existing template: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("template code %s is already in use: %w", req.Code, apperrors.ErrDuplicate)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("category %s does not exist: %w", *req.CategoryID, apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to validate category: %w", err)
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	template := domain.LetterTemplate{
		TemplateID:  uuid.NewString(),
		Name:        req.Name,
		Code:        req.Code,
		HTMLContent: req.HTMLContent,
		CategoryID:  req.CategoryID,
		IsActive:    isActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.templateRepo.SaveTemplate(ctx, template); err != nil {
		s.LogError(ctx, err, "Failed to save template", slog.String("template_id", template.TemplateID))
		return nil, err
	}

	s.LogInfo(ctx, "Template created", slog.String("template_id", template.TemplateID), slog.String("code", template.Code))
	return &template, nil
}

func (s *templateService) GetTemplateByID(ctx context.Context, templateID string) (*domain.LetterTemplate, error) {
	template, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find template by ID", slog.String("template_id", templateID))
		}
		return nil, err
	}
	return template, nil
}

func (s *templateService) ListTemplates(ctx context.Context, req dto.ListTemplatesRequest) ([]domain.LetterTemplate, error) {
	filter := portsrepo.TemplateFilter{IsActive: req.IsActive}
	if req.CategoryID != "" {
		filter.CategoryID = &req.CategoryID
	}

	templates, err := s.templateRepo.FindTemplates(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list templates")
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	if templates == nil {
		templates = []domain.LetterTemplate{}
	}
	return templates, nil
}

// RenderTemplate substitutes {{placeholder}} markers in the template body with
// the provided values. Unmatched markers are left as-is so the caller can spot
// missing values in the preview.
func (s *templateService) RenderTemplate(ctx context.Context, templateID string, values map[string]string) (string, error) {
	template, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return "", err
	}
	if !template.IsActive {
		return "", fmt.Errorf("template %s is inactive: %w", templateID, apperrors.ErrValidation)
	}

	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template.HTMLContent), nil
}

func (s *templateService) UpdateTemplate(ctx context.Context, templateID string, req dto.UpdateTemplateRequest, requestingUserID string) (*domain.LetterTemplate, error) {
	template, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Name != nil && *req.Name != template.Name {
		template.Name = *req.Name
		changed = true
	}
	if req.Code != nil && *req.Code != template.Code {
		existing, err := s.templateRepo.FindTemplateByCode(ctx, *req.Code)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check for existing template: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("template code %s is already in use: %w", *req.Code, apperrors.ErrDuplicate)
		}
		template.Code = *req.Code
		changed = true
	}
	if req.HTMLContent != nil && *req.HTMLContent != template.HTMLContent {
		template.HTMLContent = *req.HTMLContent
		changed = true
	}
	if req.CategoryID != nil {
		if *req.CategoryID != "" {
			if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("category %s does not exist: %w", *req.CategoryID, apperrors.ErrValidation)
				}
				return nil, fmt.Errorf("failed to validate category: %w", err)
			}
			template.CategoryID = req.CategoryID
		} else {
			template.CategoryID = nil
		}
		changed = true
	}
	if req.IsActive != nil && *req.IsActive != template.IsActive {
		template.IsActive = *req.IsActive
		changed = true
	}

	if !changed {
		return template, nil
	}

	template.LastUpdatedAt = time.Now()
	template.LastUpdatedBy = requestingUserID

	if err := s.templateRepo.UpdateTemplate(ctx, *template); err != nil {
		s.LogError(ctx, err, "Failed to update template", slog.String("template_id", templateID))
		return nil, err
	}

	s.LogInfo(ctx, "Template updated", slog.String("template_id", templateID))
	return template, nil
}

func (s *templateService) DeleteTemplate(ctx context.Context, templateID string) error {
	if err := s.templateRepo.DeleteTemplate(ctx, templateID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete template", slog.String("template_id", templateID))
		}
		return err
	}
	s.LogInfo(ctx, "Template deleted", slog.String("template_id", templateID))
	return nil
}
