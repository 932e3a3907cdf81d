package models

import (
	"database/sql"
	"time"
)

// User represents a user row. Role is stored as plain text and validated in
// the domain layer.
type User struct {
	UserID       string  `db:"user_id"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password_hash"`
	Name         string  `db:"name"`
	Role         string  `db:"role"`
	Jabatan      *string `db:"jabatan"`
	NIP          *string `db:"nip"`
	Phone        *string `db:"phone"`
	Avatar       *string `db:"avatar"`
	IsActive     bool    `db:"is_active"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
