package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
	"github.com/sintas-dev/sintas_backend/internal/models"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		Role:         string(d.Role),
		Jabatan:      d.Jabatan,
		NIP:          d.NIP,
		Phone:        d.Phone,
		Avatar:       d.Avatar,
		IsActive:     d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         domain.UserRole(m.Role),
		Jabatan:      m.Jabatan,
		NIP:          m.NIP,
		Phone:        m.Phone,
		Avatar:       m.Avatar,
		IsActive:     m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		expiry := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &expiry
	}
	return d
}

const userColumns = `user_id, email, password_hash, name, role, jabatan, nip, phone, avatar, is_active,
		created_at, created_by, last_updated_at, last_updated_by, deleted_at,
		refresh_token_hash, refresh_token_expiry_time`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.PasswordHash,
		&m.Name,
		&m.Role,
		&m.Jabatan,
		&m.NIP,
		&m.Phone,
		&m.Avatar,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, email, password_hash, name, role, jabatan, nip, phone, avatar, is_active,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.Name,
		modelUser.Role,
		modelUser.Jabatan,
		modelUser.NIP,
		modelUser.Phone,
		modelUser.Avatar,
		modelUser.IsActive,
		modelUser.CreatedAt,
		modelUser.CreatedBy,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email already registered: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	modelUser, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND deleted_at IS NULL;
	`
	modelUser, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE deleted_at IS NULL
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	domainUsers := []domain.User{}
	for rows.Next() {
		modelUser, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		domainUsers = append(domainUsers, toDomainUser(modelUser))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return domainUsers, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        UPDATE users
        SET name = $1, role = $2, jabatan = $3, nip = $4, phone = $5, avatar = $6, is_active = $7,
            password_hash = $8, last_updated_at = $9, last_updated_by = $10
        WHERE user_id = $11 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		modelUser.Name,
		modelUser.Role,
		modelUser.Jabatan,
		modelUser.NIP,
		modelUser.Phone,
		modelUser.Avatar,
		modelUser.IsActive,
		modelUser.PasswordHash,
		modelUser.LastUpdatedAt,
		modelUser.LastUpdatedBy,
		modelUser.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	query := `
        UPDATE users
        SET refresh_token_hash = $1, refresh_token_expiry_time = $2
        WHERE user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, refreshTokenHash, refreshTokenExpiryTime, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
        UPDATE users
        SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	query := `
        UPDATE users
        SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
        WHERE user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, deletedAt, deletedBy, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
