package dto

import (
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a new user.
type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Name     string          `json:"name" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=admin kepala staff"`
	Jabatan  *string         `json:"jabatan"` // Optional position title
	NIP      *string         `json:"nip"`     // Optional employee number
	Phone    *string         `json:"phone"`
	Avatar   *string         `json:"avatar"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name     *string          `json:"name"`
	Password *string          `json:"password" binding:"omitempty,min=8"`
	Role     *domain.UserRole `json:"role" binding:"omitempty,oneof=admin kepala staff"`
	Jabatan  *string          `json:"jabatan"`
	NIP      *string          `json:"nip"`
	Phone    *string          `json:"phone"`
	Avatar   *string          `json:"avatar"`
	IsActive *bool            `json:"isActive"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(&user)
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
