package services

import (
	"context"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

// TemplateReaderSvc defines read operations for letter templates
type TemplateReaderSvc interface {
	// GetTemplateByID retrieves a template by ID.
	GetTemplateByID(ctx context.Context, templateID string) (*domain.LetterTemplate, error)

	// ListTemplates retrieves a filtered list of templates.
	ListTemplates(ctx context.Context, req dto.ListTemplatesRequest) ([]domain.LetterTemplate, error)

	// RenderTemplate substitutes the given placeholder values into a template's
	// HTML content.
	RenderTemplate(ctx context.Context, templateID string, values map[string]string) (string, error)
}

// TemplateWriterSvc defines write operations for letter templates
type TemplateWriterSvc interface {
	// CreateTemplate creates a new template.
	CreateTemplate(ctx context.Context, req dto.CreateTemplateRequest, requestingUserID string) (*domain.LetterTemplate, error)

	// UpdateTemplate updates an existing template.
	UpdateTemplate(ctx context.Context, templateID string, req dto.UpdateTemplateRequest, requestingUserID string) (*domain.LetterTemplate, error)

	// DeleteTemplate removes a template.
	DeleteTemplate(ctx context.Context, templateID string) error
}

// TemplateSvcFacade combines all template-related service interfaces
type TemplateSvcFacade interface {
	TemplateReaderSvc
	TemplateWriterSvc
}
