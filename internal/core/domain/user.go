package domain

import "time"

// UserRole identifies the access level of a user within the office.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleKepala UserRole = "kepala"
	RoleStaff  UserRole = "staff"
)

// ValidUserRole reports whether the given value is a known role.
func ValidUserRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleKepala, RoleStaff:
		return true
	}
	return false
}

// User represents an application user (staff member of the office).
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	Jabatan      *string  `json:"jabatan,omitempty"` // Position/title
	NIP          *string  `json:"nip,omitempty"`     // Civil servant ID number
	Phone        *string  `json:"phone,omitempty"`
	Avatar       *string  `json:"avatar,omitempty"`
	IsActive     bool     `json:"isActive"`
	AuditFields
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	DeletedAt              *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// GoogleUserInfo holds the profile fields returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
