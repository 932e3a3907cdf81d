package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
	"github.com/sintas-dev/sintas_backend/internal/models"
)

type PgxTemplateRepository struct {
	db *pgxpool.Pool
}

func newPgxTemplateRepository(db *pgxpool.Pool) portsrepo.TemplateRepositoryFacade {
	return &PgxTemplateRepository{db: db}
}

// Ensure PgxTemplateRepository implements portsrepo.TemplateRepositoryFacade
var _ portsrepo.TemplateRepositoryFacade = (*PgxTemplateRepository)(nil)

func toDomainTemplate(m models.LetterTemplate) domain.LetterTemplate {
	return domain.LetterTemplate{
		TemplateID:  m.TemplateID,
		Name:        m.Name,
		Code:        m.Code,
		HTMLContent: m.HTMLContent,
		CategoryID:  m.CategoryID,
		IsActive:    m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const templateColumns = `template_id, name, code, html_content, category_id, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanTemplate(row pgx.Row) (models.LetterTemplate, error) {
	var m models.LetterTemplate
	err := row.Scan(
		&m.TemplateID,
		&m.Name,
		&m.Code,
		&m.HTMLContent,
		&m.CategoryID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.LetterTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM letter_templates WHERE template_id = $1;`
	m, err := scanTemplate(r.db.QueryRow(ctx, query, templateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find template by ID %s: %w", templateID, err)
	}
	d := toDomainTemplate(m)
	return &d, nil
}

func (r *PgxTemplateRepository) FindTemplateByCode(ctx context.Context, code string) (*domain.LetterTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM letter_templates WHERE code = $1;`
	m, err := scanTemplate(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find template by code %s: %w", code, err)
	}
	d := toDomainTemplate(m)
	return &d, nil
}

func (r *PgxTemplateRepository) FindTemplates(ctx context.Context, filter portsrepo.TemplateFilter) ([]domain.LetterTemplate, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}

	query := `SELECT ` + templateColumns + ` FROM letter_templates`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	templates := []domain.LetterTemplate{}
	for rows.Next() {
		m, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template row: %w", err)
		}
		templates = append(templates, toDomainTemplate(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating template rows: %w", rows.Err())
	}
	return templates, nil
}

func (r *PgxTemplateRepository) SaveTemplate(ctx context.Context, template domain.LetterTemplate) error {
	query := `
        INSERT INTO letter_templates (template_id, name, code, html_content, category_id, is_active,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		template.TemplateID,
		template.Name,
		template.Code,
		template.HTMLContent,
		template.CategoryID,
		template.IsActive,
		template.CreatedAt,
		template.CreatedBy,
		template.LastUpdatedAt,
		template.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("template code already in use: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

func (r *PgxTemplateRepository) UpdateTemplate(ctx context.Context, template domain.LetterTemplate) error {
	query := `
        UPDATE letter_templates
        SET name = $1, code = $2, html_content = $3, category_id = $4, is_active = $5,
            last_updated_at = $6, last_updated_by = $7
        WHERE template_id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		template.Name,
		template.Code,
		template.HTMLContent,
		template.CategoryID,
		template.IsActive,
		template.LastUpdatedAt,
		template.LastUpdatedBy,
		template.TemplateID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("template code already in use: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update template: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("template not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM letter_templates WHERE template_id = $1;`, templateID)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("template not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
