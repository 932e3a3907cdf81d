package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
	"github.com/sintas-dev/sintas_backend/internal/models"
)

type PgxCategoryRepository struct {
	db *pgxpool.Pool
}

func newPgxCategoryRepository(db *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{db: db}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Code:        m.Code,
		Description: m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.Code,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

const categoryColumns = `category_id, name, code, description, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`
	m, err := scanCategory(r.db.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	d := toDomainCategory(m)
	return &d, nil
}

func (r *PgxCategoryRepository) FindCategoryByCode(ctx context.Context, code string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE code = $1;`
	m, err := scanCategory(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by code %s: %w", code, err)
	}
	d := toDomainCategory(m)
	return &d, nil
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, toDomainCategory(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}

// CountCategoryReferences counts every letter and template row pointing at the
// category. A non-zero result blocks deletion.
func (r *PgxCategoryRepository) CountCategoryReferences(ctx context.Context, categoryID string) (int64, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM incoming_letters WHERE category_id = $1) +
			(SELECT COUNT(*) FROM outgoing_letters WHERE category_id = $1) +
			(SELECT COUNT(*) FROM letter_templates WHERE category_id = $1);
	`
	var count int64
	if err := r.db.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count category references: %w", err)
	}
	return count, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
        INSERT INTO categories (category_id, name, code, description, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Code,
		category.Description,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("category code already in use: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
        UPDATE categories
        SET name = $1, code = $2, description = $3, last_updated_at = $4, last_updated_by = $5
        WHERE category_id = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		category.Name,
		category.Code,
		category.Description,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
		category.CategoryID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("category code already in use: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("category not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
