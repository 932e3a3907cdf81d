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

type PgxRoutingActionRepository struct {
	BaseRepository
}

func newPgxRoutingActionRepository(pool *pgxpool.Pool) portsrepo.RoutingActionRepositoryFacade {
	return &PgxRoutingActionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxRoutingActionRepository implements portsrepo.RoutingActionRepositoryFacade
var _ portsrepo.RoutingActionRepositoryFacade = (*PgxRoutingActionRepository)(nil)

func toModelRoutingAction(d domain.RoutingAction) models.RoutingAction {
	return models.RoutingAction{
		RoutingID:        d.RoutingID,
		IncomingLetterID: d.IncomingLetterID,
		FromUserID:       d.FromUserID,
		ToUserID:         d.ToUserID,
		DestinationLabel: d.DestinationLabel,
		Instruction:      d.Instruction,
		Status:           string(d.Status),
		Priority:         string(d.Priority),
		DueDate:          d.DueDate,
		Note:             d.Note,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainRoutingAction(m models.RoutingAction) domain.RoutingAction {
	return domain.RoutingAction{
		RoutingID:        m.RoutingID,
		IncomingLetterID: m.IncomingLetterID,
		FromUserID:       m.FromUserID,
		ToUserID:         m.ToUserID,
		DestinationLabel: m.DestinationLabel,
		Instruction:      m.Instruction,
		Status:           domain.RoutingActionStatus(m.Status),
		Priority:         domain.RoutingPriority(m.Priority),
		DueDate:          m.DueDate,
		Note:             m.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const routingActionColumns = `routing_id, incoming_letter_id, from_user_id, to_user_id, destination_label,
		instruction, status, priority, due_date, note,
		created_at, created_by, last_updated_at, last_updated_by`

func scanRoutingAction(row pgx.Row) (models.RoutingAction, error) {
	var m models.RoutingAction
	err := row.Scan(
		&m.RoutingID,
		&m.IncomingLetterID,
		&m.FromUserID,
		&m.ToUserID,
		&m.DestinationLabel,
		&m.Instruction,
		&m.Status,
		&m.Priority,
		&m.DueDate,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxRoutingActionRepository) FindRoutingActionByID(ctx context.Context, routingID string) (*domain.RoutingAction, error) {
	query := `SELECT ` + routingActionColumns + ` FROM routing_actions WHERE routing_id = $1;`
	m, err := scanRoutingAction(r.Pool.QueryRow(ctx, query, routingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find routing action by ID %s: %w", routingID, err)
	}
	d := toDomainRoutingAction(m)
	return &d, nil
}

func (r *PgxRoutingActionRepository) FindRoutingActions(ctx context.Context, filter portsrepo.RoutingActionFilter) ([]domain.RoutingAction, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.IncomingLetterID != nil {
		args = append(args, *filter.IncomingLetterID)
		conditions = append(conditions, fmt.Sprintf("incoming_letter_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.FromUserID != nil {
		args = append(args, *filter.FromUserID)
		conditions = append(conditions, fmt.Sprintf("from_user_id = $%d", len(args)))
	}
	if filter.ToUserID != nil {
		args = append(args, *filter.ToUserID)
		conditions = append(conditions, fmt.Sprintf("to_user_id = $%d", len(args)))
	}

	query := `SELECT ` + routingActionColumns + ` FROM routing_actions`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC`

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
		return nil, fmt.Errorf("failed to query routing actions: %w", err)
	}
	defer rows.Close()

	actions := []domain.RoutingAction{}
	for rows.Next() {
		m, err := scanRoutingAction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan routing action row: %w", err)
		}
		actions = append(actions, toDomainRoutingAction(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating routing action rows: %w", rows.Err())
	}
	return actions, nil
}

func (r *PgxRoutingActionRepository) CountOpenSiblingActions(ctx context.Context, incomingLetterID string, excludeRoutingID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM routing_actions
		WHERE incoming_letter_id = $1 AND routing_id != $2 AND status != $3;
	`
	var count int64
	err := r.Pool.QueryRow(ctx, query, incomingLetterID, excludeRoutingID, string(domain.RoutingDone)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open sibling actions: %w", err)
	}
	return count, nil
}

const insertRoutingActionQuery = `
        INSERT INTO routing_actions (routing_id, incoming_letter_id, from_user_id, to_user_id, destination_label,
            instruction, status, priority, due_date, note,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `

const updateRoutingActionQuery = `
        UPDATE routing_actions
        SET to_user_id = $1, destination_label = $2, instruction = $3, status = $4, priority = $5,
            due_date = $6, note = $7, last_updated_at = $8, last_updated_by = $9
        WHERE routing_id = $10;
    `

// updateParentLetterStatus moves the parent incoming letter to the cascaded
// status within the same transaction as the routing mutation.
func updateParentLetterStatus(ctx context.Context, tx pgx.Tx, letterID string, status domain.IncomingLetterStatus, updatedAt time.Time, updatedBy string) error {
	query := `
		UPDATE incoming_letters
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE letter_id = $4;
	`
	cmdTag, err := tx.Exec(ctx, query, string(status), updatedAt, updatedBy, letterID)
	if err != nil {
		return fmt.Errorf("failed to cascade status to letter %s: %w", letterID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("parent letter not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxRoutingActionRepository) SaveRoutingAction(ctx context.Context, action domain.RoutingAction, parentStatus *domain.IncomingLetterStatus) error {
	m := toModelRoutingAction(action)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, insertRoutingActionQuery,
		m.RoutingID,
		m.IncomingLetterID,
		m.FromUserID,
		m.ToUserID,
		m.DestinationLabel,
		m.Instruction,
		m.Status,
		m.Priority,
		m.DueDate,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save routing action: %w", err)
	}

	if parentStatus != nil {
		if err := updateParentLetterStatus(ctx, tx, m.IncomingLetterID, *parentStatus, m.LastUpdatedAt, m.LastUpdatedBy); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxRoutingActionRepository) UpdateRoutingAction(ctx context.Context, action domain.RoutingAction, parentStatus *domain.IncomingLetterStatus) error {
	m := toModelRoutingAction(action)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, updateRoutingActionQuery,
		m.ToUserID,
		m.DestinationLabel,
		m.Instruction,
		m.Status,
		m.Priority,
		m.DueDate,
		m.Note,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.RoutingID,
	)
	if err != nil {
		return fmt.Errorf("failed to update routing action: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("routing action not found: %w", apperrors.ErrNotFound)
	}

	if parentStatus != nil {
		if err := updateParentLetterStatus(ctx, tx, m.IncomingLetterID, *parentStatus, m.LastUpdatedAt, m.LastUpdatedBy); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxRoutingActionRepository) DeleteRoutingAction(ctx context.Context, routingID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM routing_actions WHERE routing_id = $1;`, routingID)
	if err != nil {
		return fmt.Errorf("failed to delete routing action: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("routing action not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
