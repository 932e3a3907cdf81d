package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
	"github.com/sintas-dev/sintas_backend/internal/models"
)

type PgxOutgoingLetterRepository struct {
	db *pgxpool.Pool
}

func newPgxOutgoingLetterRepository(db *pgxpool.Pool) portsrepo.OutgoingLetterRepositoryFacade {
	return &PgxOutgoingLetterRepository{db: db}
}

// Ensure PgxOutgoingLetterRepository implements portsrepo.OutgoingLetterRepositoryFacade
var _ portsrepo.OutgoingLetterRepositoryFacade = (*PgxOutgoingLetterRepository)(nil)

func toModelOutgoingLetter(d domain.OutgoingLetter) models.OutgoingLetter {
	return models.OutgoingLetter{
		LetterID:       d.LetterID,
		LetterNumber:   d.LetterNumber,
		LetterDate:     d.LetterDate,
		Destination:    d.Destination,
		Subject:        d.Subject,
		AttachmentNote: d.AttachmentNote,
		Sensitivity:    string(d.Sensitivity),
		Status:         string(d.Status),
		Note:           d.Note,
		FileRef:        d.FileRef,
		BodyHTML:       d.BodyHTML,
		CategoryID:     d.CategoryID,
		AuthorID:       d.AuthorID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainOutgoingLetter(m models.OutgoingLetter) domain.OutgoingLetter {
	return domain.OutgoingLetter{
		LetterID:       m.LetterID,
		LetterNumber:   m.LetterNumber,
		LetterDate:     m.LetterDate,
		Destination:    m.Destination,
		Subject:        m.Subject,
		AttachmentNote: m.AttachmentNote,
		Sensitivity:    domain.Sensitivity(m.Sensitivity),
		Status:         domain.OutgoingLetterStatus(m.Status),
		Note:           m.Note,
		FileRef:        m.FileRef,
		BodyHTML:       m.BodyHTML,
		CategoryID:     m.CategoryID,
		AuthorID:       m.AuthorID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const outgoingLetterColumns = `letter_id, letter_number, letter_date, destination, subject,
		attachment_note, sensitivity, status, note, file_ref, body_html, category_id, author_id,
		created_at, created_by, last_updated_at, last_updated_by`

func scanOutgoingLetter(row pgx.Row) (models.OutgoingLetter, error) {
	var m models.OutgoingLetter
	err := row.Scan(
		&m.LetterID,
		&m.LetterNumber,
		&m.LetterDate,
		&m.Destination,
		&m.Subject,
		&m.AttachmentNote,
		&m.Sensitivity,
		&m.Status,
		&m.Note,
		&m.FileRef,
		&m.BodyHTML,
		&m.CategoryID,
		&m.AuthorID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxOutgoingLetterRepository) FindOutgoingLetterByID(ctx context.Context, letterID string) (*domain.OutgoingLetter, error) {
	query := `SELECT ` + outgoingLetterColumns + ` FROM outgoing_letters WHERE letter_id = $1;`
	m, err := scanOutgoingLetter(r.db.QueryRow(ctx, query, letterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find outgoing letter by ID %s: %w", letterID, err)
	}
	d := toDomainOutgoingLetter(m)
	return &d, nil
}

func (r *PgxOutgoingLetterRepository) FindOutgoingLetterByNumber(ctx context.Context, letterNumber string) (*domain.OutgoingLetter, error) {
	query := `SELECT ` + outgoingLetterColumns + ` FROM outgoing_letters WHERE letter_number = $1;`
	m, err := scanOutgoingLetter(r.db.QueryRow(ctx, query, letterNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find outgoing letter by number: %w", err)
	}
	d := toDomainOutgoingLetter(m)
	return &d, nil
}

func (r *PgxOutgoingLetterRepository) FindOutgoingLetters(ctx context.Context, filter portsrepo.OutgoingLetterFilter) ([]domain.OutgoingLetter, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Sensitivity != nil {
		args = append(args, string(*filter.Sensitivity))
		conditions = append(conditions, fmt.Sprintf("sensitivity = $%d", len(args)))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		idx := len(args)
		conditions = append(conditions, fmt.Sprintf("(letter_number ILIKE $%d OR destination ILIKE $%d OR subject ILIKE $%d)", idx, idx, idx))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("letter_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("letter_date < $%d", len(args)))
	}

	query := `SELECT ` + outgoingLetterColumns + ` FROM outgoing_letters`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY letter_date DESC, created_at DESC`

	// Limit <= 0 means unbounded; report exports read the full range.
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		if filter.Offset > 0 {
			args = append(args, filter.Offset)
			query += fmt.Sprintf(" OFFSET $%d", len(args))
		}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query outgoing letters: %w", err)
	}
	defer rows.Close()

	letters := []domain.OutgoingLetter{}
	for rows.Next() {
		m, err := scanOutgoingLetter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outgoing letter row: %w", err)
		}
		letters = append(letters, toDomainOutgoingLetter(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating outgoing letter rows: %w", rows.Err())
	}
	return letters, nil
}

func (r *PgxOutgoingLetterRepository) FindOutgoingNumbersByDateRange(ctx context.Context, from time.Time, to time.Time) ([]string, error) {
	query := `
		SELECT letter_number
		FROM outgoing_letters
		WHERE letter_date >= $1 AND letter_date < $2
		ORDER BY letter_number;
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query outgoing letter numbers: %w", err)
	}
	defer rows.Close()

	numbers := []string{}
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("failed to scan letter number: %w", err)
		}
		numbers = append(numbers, number)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating letter numbers: %w", rows.Err())
	}
	return numbers, nil
}

func (r *PgxOutgoingLetterRepository) SaveOutgoingLetter(ctx context.Context, letter domain.OutgoingLetter) error {
	m := toModelOutgoingLetter(letter)
	query := `
        INSERT INTO outgoing_letters (letter_id, letter_number, letter_date, destination, subject,
            attachment_note, sensitivity, status, note, file_ref, body_html, category_id, author_id,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
    `
	_, err := r.db.Exec(ctx, query,
		m.LetterID,
		m.LetterNumber,
		m.LetterDate,
		m.Destination,
		m.Subject,
		m.AttachmentNote,
		m.Sensitivity,
		m.Status,
		m.Note,
		m.FileRef,
		m.BodyHTML,
		m.CategoryID,
		m.AuthorID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// Callers that generated the number treat this as a race and retry.
			return fmt.Errorf("letter number already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save outgoing letter: %w", err)
	}
	return nil
}

func (r *PgxOutgoingLetterRepository) UpdateOutgoingLetter(ctx context.Context, letter domain.OutgoingLetter) error {
	m := toModelOutgoingLetter(letter)
	query := `
        UPDATE outgoing_letters
        SET letter_number = $1, letter_date = $2, destination = $3, subject = $4,
            attachment_note = $5, sensitivity = $6, status = $7, note = $8, file_ref = $9,
            body_html = $10, category_id = $11, last_updated_at = $12, last_updated_by = $13
        WHERE letter_id = $14;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.LetterNumber,
		m.LetterDate,
		m.Destination,
		m.Subject,
		m.AttachmentNote,
		m.Sensitivity,
		m.Status,
		m.Note,
		m.FileRef,
		m.BodyHTML,
		m.CategoryID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.LetterID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("letter number already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update outgoing letter: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("outgoing letter not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxOutgoingLetterRepository) DeleteOutgoingLetter(ctx context.Context, letterID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM outgoing_letters WHERE letter_id = $1;`, letterID)
	if err != nil {
		return fmt.Errorf("failed to delete outgoing letter: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("outgoing letter not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
