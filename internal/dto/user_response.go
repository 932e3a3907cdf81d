package dto

import (
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// UserResponse defines the data returned for a user. The password hash and
// refresh token details never leave the service layer.
type UserResponse struct {
	UserID   string          `json:"userID"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Role     domain.UserRole `json:"role"`
	Jabatan  *string         `json:"jabatan,omitempty"`
	NIP      *string         `json:"nip,omitempty"`
	Phone    *string         `json:"phone,omitempty"`
	Avatar   *string         `json:"avatar,omitempty"`
	IsActive bool            `json:"isActive"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		Jabatan:  user.Jabatan,
		NIP:      user.NIP,
		Phone:    user.Phone,
		Avatar:   user.Avatar,
		IsActive: user.IsActive,
	}
}
