package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
	"github.com/sintas-dev/sintas_backend/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, requestingUserID string) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s is already registered: %w", req.Email, apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Role:         req.Role,
		Jabatan:      req.Jabatan,
		NIP:          req.NIP,
		Phone:        req.Phone,
		Avatar:       req.Avatar,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Name != nil && *req.Name != user.Name {
		user.Name = *req.Name
		changed = true
	}
	if req.Role != nil && *req.Role != user.Role {
		user.Role = *req.Role
		changed = true
	}
	if req.Jabatan != nil {
		user.Jabatan = req.Jabatan
		changed = true
	}
	if req.NIP != nil {
		user.NIP = req.NIP
		changed = true
	}
	if req.Phone != nil {
		user.Phone = req.Phone
		changed = true
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
		changed = true
	}
	if req.IsActive != nil && *req.IsActive != user.IsActive {
		user.IsActive = *req.IsActive
		changed = true
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password", slog.String("user_id", userID))
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
		changed = true
	}

	if !changed {
		return user, nil
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User updated", slog.String("user_id", userID))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), requestingUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		}
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to find user for authentication")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if !user.IsActive || user.DeletedAt != nil {
		return nil, apperrors.ErrUnauthorized
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (s *userService) FindOrCreateUserByGoogleInfo(ctx context.Context, info *domain.GoogleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		if !user.IsActive || user.DeletedAt != nil {
			return nil, apperrors.ErrUnauthorized
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by google email")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// First sign-in: provision a staff account. The random password is never
	// shared; the account authenticates via Google only until an admin sets one.
	randomPassword, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password for new google user: %w", err)
	}
	passwordHash, err := utils.HashPassword(randomPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password for new google user: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()
	newUser := domain.User{
		UserID:       newUserID,
		Email:        info.Email,
		PasswordHash: passwordHash,
		Name:         info.Name,
		Role:         domain.RoleStaff,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}
	if info.Picture != "" {
		picture := info.Picture
		newUser.Avatar = &picture
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to create user from google sign-in")
		return nil, fmt.Errorf("failed to create user from google sign-in: %w", err)
	}

	s.LogInfo(ctx, "User provisioned via google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}
