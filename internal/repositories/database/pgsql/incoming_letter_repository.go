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

type PgxIncomingLetterRepository struct {
	BaseRepository
}

func newPgxIncomingLetterRepository(pool *pgxpool.Pool) portsrepo.IncomingLetterRepositoryFacade {
	return &PgxIncomingLetterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxIncomingLetterRepository implements portsrepo.IncomingLetterRepositoryFacade
var _ portsrepo.IncomingLetterRepositoryFacade = (*PgxIncomingLetterRepository)(nil)

func toModelIncomingLetter(d domain.IncomingLetter) models.IncomingLetter {
	return models.IncomingLetter{
		LetterID:       d.LetterID,
		LetterNumber:   d.LetterNumber,
		LetterDate:     d.LetterDate,
		ReceivedDate:   d.ReceivedDate,
		Sender:         d.Sender,
		Subject:        d.Subject,
		AttachmentNote: d.AttachmentNote,
		Sensitivity:    string(d.Sensitivity),
		Status:         string(d.Status),
		Note:           d.Note,
		FileRef:        d.FileRef,
		CategoryID:     d.CategoryID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainIncomingLetter(m models.IncomingLetter) domain.IncomingLetter {
	return domain.IncomingLetter{
		LetterID:       m.LetterID,
		LetterNumber:   m.LetterNumber,
		LetterDate:     m.LetterDate,
		ReceivedDate:   m.ReceivedDate,
		Sender:         m.Sender,
		Subject:        m.Subject,
		AttachmentNote: m.AttachmentNote,
		Sensitivity:    domain.Sensitivity(m.Sensitivity),
		Status:         domain.IncomingLetterStatus(m.Status),
		Note:           m.Note,
		FileRef:        m.FileRef,
		CategoryID:     m.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const incomingLetterColumns = `letter_id, letter_number, letter_date, received_date, sender, subject,
		attachment_note, sensitivity, status, note, file_ref, category_id,
		created_at, created_by, last_updated_at, last_updated_by`

func scanIncomingLetter(row pgx.Row) (models.IncomingLetter, error) {
	var m models.IncomingLetter
	err := row.Scan(
		&m.LetterID,
		&m.LetterNumber,
		&m.LetterDate,
		&m.ReceivedDate,
		&m.Sender,
		&m.Subject,
		&m.AttachmentNote,
		&m.Sensitivity,
		&m.Status,
		&m.Note,
		&m.FileRef,
		&m.CategoryID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxIncomingLetterRepository) FindIncomingLetterByID(ctx context.Context, letterID string) (*domain.IncomingLetter, error) {
	query := `SELECT ` + incomingLetterColumns + ` FROM incoming_letters WHERE letter_id = $1;`
	m, err := scanIncomingLetter(r.Pool.QueryRow(ctx, query, letterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find incoming letter by ID %s: %w", letterID, err)
	}
	d := toDomainIncomingLetter(m)
	return &d, nil
}

func (r *PgxIncomingLetterRepository) FindIncomingLetterByNumber(ctx context.Context, letterNumber string) (*domain.IncomingLetter, error) {
	query := `SELECT ` + incomingLetterColumns + ` FROM incoming_letters WHERE letter_number = $1;`
	m, err := scanIncomingLetter(r.Pool.QueryRow(ctx, query, letterNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find incoming letter by number: %w", err)
	}
	d := toDomainIncomingLetter(m)
	return &d, nil
}

func (r *PgxIncomingLetterRepository) FindIncomingLetters(ctx context.Context, filter portsrepo.IncomingLetterFilter) ([]domain.IncomingLetter, error) {
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
		conditions = append(conditions, fmt.Sprintf("(letter_number ILIKE $%d OR sender ILIKE $%d OR subject ILIKE $%d)", idx, idx, idx))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("received_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("received_date < $%d", len(args)))
	}

	query := `SELECT ` + incomingLetterColumns + ` FROM incoming_letters`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY received_date DESC, created_at DESC`

	// Limit <= 0 means unbounded; report exports read the full range.
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		if filter.Offset > 0 {
			args = append(args, filter.Offset)
			query += fmt.Sprintf(" OFFSET $%d", len(args))
		}
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incoming letters: %w", err)
	}
	defer rows.Close()

	letters := []domain.IncomingLetter{}
	for rows.Next() {
		m, err := scanIncomingLetter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incoming letter row: %w", err)
		}
		letters = append(letters, toDomainIncomingLetter(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating incoming letter rows: %w", rows.Err())
	}
	return letters, nil
}

func (r *PgxIncomingLetterRepository) SaveIncomingLetter(ctx context.Context, letter domain.IncomingLetter) error {
	m := toModelIncomingLetter(letter)
	query := `
        INSERT INTO incoming_letters (letter_id, letter_number, letter_date, received_date, sender, subject,
            attachment_note, sensitivity, status, note, file_ref, category_id,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.LetterID,
		m.LetterNumber,
		m.LetterDate,
		m.ReceivedDate,
		m.Sender,
		m.Subject,
		m.AttachmentNote,
		m.Sensitivity,
		m.Status,
		m.Note,
		m.FileRef,
		m.CategoryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("letter number already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save incoming letter: %w", err)
	}
	return nil
}

func (r *PgxIncomingLetterRepository) UpdateIncomingLetter(ctx context.Context, letter domain.IncomingLetter) error {
	m := toModelIncomingLetter(letter)
	query := `
        UPDATE incoming_letters
        SET letter_number = $1, letter_date = $2, received_date = $3, sender = $4, subject = $5,
            attachment_note = $6, sensitivity = $7, status = $8, note = $9, file_ref = $10,
            category_id = $11, last_updated_at = $12, last_updated_by = $13
        WHERE letter_id = $14;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.LetterNumber,
		m.LetterDate,
		m.ReceivedDate,
		m.Sender,
		m.Subject,
		m.AttachmentNote,
		m.Sensitivity,
		m.Status,
		m.Note,
		m.FileRef,
		m.CategoryID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.LetterID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("letter number already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update incoming letter: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incoming letter not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// DeleteIncomingLetter removes the letter together with its routing actions so
// no orphaned disposisi rows survive.
func (r *PgxIncomingLetterRepository) DeleteIncomingLetter(ctx context.Context, letterID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM routing_actions WHERE incoming_letter_id = $1;`, letterID); err != nil {
		return fmt.Errorf("failed to delete routing actions for letter %s: %w", letterID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM incoming_letters WHERE letter_id = $1;`, letterID)
	if err != nil {
		return fmt.Errorf("failed to delete incoming letter: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incoming letter not found: %w", apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
