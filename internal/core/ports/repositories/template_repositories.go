package repositories

import (
	"context"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// TemplateFilter narrows list queries over letter templates.
type TemplateFilter struct {
	CategoryID *string
	IsActive   *bool
}

// TemplateReader defines read operations for letter templates
type TemplateReader interface {
	// FindTemplateByID retrieves a specific template by its ID.
	FindTemplateByID(ctx context.Context, templateID string) (*domain.LetterTemplate, error)

	// FindTemplateByCode retrieves a template by its unique code.
	FindTemplateByCode(ctx context.Context, code string) (*domain.LetterTemplate, error)

	// FindTemplates retrieves a filtered list of templates ordered by name.
	FindTemplates(ctx context.Context, filter TemplateFilter) ([]domain.LetterTemplate, error)
}

// TemplateWriter defines write operations for letter templates
type TemplateWriter interface {
	// SaveTemplate persists a new template.
	SaveTemplate(ctx context.Context, template domain.LetterTemplate) error

	// UpdateTemplate updates an existing template.
	UpdateTemplate(ctx context.Context, template domain.LetterTemplate) error

	// DeleteTemplate removes a template.
	DeleteTemplate(ctx context.Context, templateID string) error
}

// TemplateRepositoryFacade combines all template-related repository interfaces
type TemplateRepositoryFacade interface {
	TemplateReader
	TemplateWriter
}
