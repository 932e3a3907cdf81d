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

type PgxArchiveEntryRepository struct {
	BaseRepository
}

func newPgxArchiveEntryRepository(pool *pgxpool.Pool) portsrepo.ArchiveEntryRepositoryFacade {
	return &PgxArchiveEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxArchiveEntryRepository implements portsrepo.ArchiveEntryRepositoryFacade
var _ portsrepo.ArchiveEntryRepositoryFacade = (*PgxArchiveEntryRepository)(nil)

func toModelArchiveEntry(d domain.ArchiveEntry) models.ArchiveEntry {
	return models.ArchiveEntry{
		ArchiveID:        d.ArchiveID,
		ArchiveNumber:    d.ArchiveNumber,
		ArchiveDate:      d.ArchiveDate,
		Description:      d.Description,
		Location:         d.Location,
		FileRef:          d.FileRef,
		Kind:             string(d.Kind),
		IncomingLetterID: d.IncomingLetterID,
		OutgoingLetterID: d.OutgoingLetterID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainArchiveEntry(m models.ArchiveEntry) domain.ArchiveEntry {
	return domain.ArchiveEntry{
		ArchiveID:        m.ArchiveID,
		ArchiveNumber:    m.ArchiveNumber,
		ArchiveDate:      m.ArchiveDate,
		Description:      m.Description,
		Location:         m.Location,
		FileRef:          m.FileRef,
		Kind:             domain.ArchiveKind(m.Kind),
		IncomingLetterID: m.IncomingLetterID,
		OutgoingLetterID: m.OutgoingLetterID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const archiveEntryColumns = `archive_id, archive_number, archive_date, description, location, file_ref,
		kind, incoming_letter_id, outgoing_letter_id,
		created_at, created_by, last_updated_at, last_updated_by`

func scanArchiveEntry(row pgx.Row) (models.ArchiveEntry, error) {
	var m models.ArchiveEntry
	err := row.Scan(
		&m.ArchiveID,
		&m.ArchiveNumber,
		&m.ArchiveDate,
		&m.Description,
		&m.Location,
		&m.FileRef,
		&m.Kind,
		&m.IncomingLetterID,
		&m.OutgoingLetterID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxArchiveEntryRepository) FindArchiveEntryByID(ctx context.Context, archiveID string) (*domain.ArchiveEntry, error) {
	query := `SELECT ` + archiveEntryColumns + ` FROM archive_entries WHERE archive_id = $1;`
	m, err := scanArchiveEntry(r.Pool.QueryRow(ctx, query, archiveID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find archive entry by ID %s: %w", archiveID, err)
	}
	d := toDomainArchiveEntry(m)
	return &d, nil
}

func (r *PgxArchiveEntryRepository) FindArchiveEntryByLetter(ctx context.Context, kind domain.ArchiveKind, letterID string) (*domain.ArchiveEntry, error) {
	letterColumn := "incoming_letter_id"
	if kind == domain.ArchiveOutgoing {
		letterColumn = "outgoing_letter_id"
	}
	query := `SELECT ` + archiveEntryColumns + ` FROM archive_entries WHERE ` + letterColumn + ` = $1;`
	m, err := scanArchiveEntry(r.Pool.QueryRow(ctx, query, letterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find archive entry by letter %s: %w", letterID, err)
	}
	d := toDomainArchiveEntry(m)
	return &d, nil
}

func (r *PgxArchiveEntryRepository) FindArchiveEntries(ctx context.Context, filter portsrepo.ArchiveEntryFilter) ([]domain.ArchiveEntry, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.Kind != nil {
		args = append(args, string(*filter.Kind))
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		idx := len(args)
		conditions = append(conditions, fmt.Sprintf("(archive_number ILIKE $%d OR description ILIKE $%d OR location ILIKE $%d)", idx, idx, idx))
	}

	query := `SELECT ` + archiveEntryColumns + ` FROM archive_entries`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY archive_date DESC, archive_number DESC`

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
		return nil, fmt.Errorf("failed to query archive entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.ArchiveEntry{}
	for rows.Next() {
		m, err := scanArchiveEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archive entry row: %w", err)
		}
		entries = append(entries, toDomainArchiveEntry(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating archive entry rows: %w", rows.Err())
	}
	return entries, nil
}

// FindLastArchiveNumber orders by length before value so that sequences past
// 999 still compare numerically.
func (r *PgxArchiveEntryRepository) FindLastArchiveNumber(ctx context.Context, prefix string) (string, error) {
	query := `
		SELECT archive_number
		FROM archive_entries
		WHERE archive_number LIKE $1
		ORDER BY length(archive_number) DESC, archive_number DESC
		LIMIT 1;
	`
	var number string
	err := r.Pool.QueryRow(ctx, query, prefix+"%").Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find last archive number: %w", err)
	}
	return number, nil
}

// applyLetterStatusCascade moves the referenced letter to the cascaded status
// within the surrounding transaction.
func applyLetterStatusCascade(ctx context.Context, tx pgx.Tx, entry models.ArchiveEntry, cascade portsrepo.LetterStatusCascade, updatedAt time.Time, updatedBy string) error {
	if cascade.IncomingStatus != nil && entry.IncomingLetterID != nil {
		query := `
			UPDATE incoming_letters
			SET status = $1, last_updated_at = $2, last_updated_by = $3
			WHERE letter_id = $4;
		`
		cmdTag, err := tx.Exec(ctx, query, string(*cascade.IncomingStatus), updatedAt, updatedBy, *entry.IncomingLetterID)
		if err != nil {
			return fmt.Errorf("failed to cascade status to incoming letter: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("referenced incoming letter not found: %w", apperrors.ErrNotFound)
		}
	}
	if cascade.OutgoingStatus != nil && entry.OutgoingLetterID != nil {
		query := `
			UPDATE outgoing_letters
			SET status = $1, last_updated_at = $2, last_updated_by = $3
			WHERE letter_id = $4;
		`
		cmdTag, err := tx.Exec(ctx, query, string(*cascade.OutgoingStatus), updatedAt, updatedBy, *entry.OutgoingLetterID)
		if err != nil {
			return fmt.Errorf("failed to cascade status to outgoing letter: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("referenced outgoing letter not found: %w", apperrors.ErrNotFound)
		}
	}
	return nil
}

func (r *PgxArchiveEntryRepository) SaveArchiveEntry(ctx context.Context, entry domain.ArchiveEntry, cascade portsrepo.LetterStatusCascade) error {
	m := toModelArchiveEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
        INSERT INTO archive_entries (archive_id, archive_number, archive_date, description, location, file_ref,
            kind, incoming_letter_id, outgoing_letter_id,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err = tx.Exec(ctx, query,
		m.ArchiveID,
		m.ArchiveNumber,
		m.ArchiveDate,
		m.Description,
		m.Location,
		m.FileRef,
		m.Kind,
		m.IncomingLetterID,
		m.OutgoingLetterID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// Either the archive number raced another allocation or the letter
			// already has an entry.
			return fmt.Errorf("archive number or letter reference already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save archive entry: %w", err)
	}

	if err := applyLetterStatusCascade(ctx, tx, m, cascade, m.LastUpdatedAt, m.LastUpdatedBy); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxArchiveEntryRepository) UpdateArchiveEntry(ctx context.Context, entry domain.ArchiveEntry) error {
	m := toModelArchiveEntry(entry)
	query := `
        UPDATE archive_entries
        SET archive_date = $1, description = $2, location = $3, file_ref = $4,
            last_updated_at = $5, last_updated_by = $6
        WHERE archive_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ArchiveDate,
		m.Description,
		m.Location,
		m.FileRef,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ArchiveID,
	)
	if err != nil {
		return fmt.Errorf("failed to update archive entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("archive entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxArchiveEntryRepository) DeleteArchiveEntry(ctx context.Context, archiveID string, cascade portsrepo.LetterStatusCascade, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Read the letter references before deleting so the cascade knows its target.
	query := `SELECT ` + archiveEntryColumns + ` FROM archive_entries WHERE archive_id = $1;`
	m, err := scanArchiveEntry(tx.QueryRow(ctx, query, archiveID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load archive entry %s: %w", archiveID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM archive_entries WHERE archive_id = $1;`, archiveID); err != nil {
		return fmt.Errorf("failed to delete archive entry: %w", err)
	}

	if err := applyLetterStatusCascade(ctx, tx, m, cascade, updatedAt, m.LastUpdatedBy); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
