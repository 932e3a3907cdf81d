package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/core/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	email := "staff@kantor.go.id"
	password := "password123"

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == email && user.PasswordHash != password && user.IsActive
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Email:    email,
		Password: password,
		Name:     "Staf Baru",
		Role:     domain.RoleStaff,
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(domain.RoleStaff, user.Role)
	suite.NotEqual(password, user.PasswordHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	email := "taken@kantor.go.id"

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).
		Return(&domain.User{UserID: "existing", Email: email}, nil).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Email:    email,
		Password: "password123",
		Name:     "Duplikat",
		Role:     domain.RoleStaff,
	}, "admin-1")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	email := "kepala@kantor.go.id"
	password := "rahasia-kantor"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(&domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, email, password)

	suite.Require().NoError(err)
	suite.Equal(email, user.Email)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	email := "kepala@kantor.go.id"
	hash, err := bcrypt.GenerateFromPassword([]byte("benar"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(&domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, email, "salah")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_InactiveUser() {
	ctx := context.Background()
	email := "nonaktif@kantor.go.id"

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).Return(&domain.User{
		UserID:   uuid.NewString(),
		Email:    email,
		IsActive: false,
	}, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, email, "apapun")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestFindOrCreateUserByGoogleInfo_ProvisionsStaff() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{
		Email:   "baru@kantor.go.id",
		Name:    "Pegawai Baru",
		Picture: "https://lh3.googleusercontent.com/a/photo",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, info.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == info.Email && user.Role == domain.RoleStaff && user.IsActive &&
			user.Avatar != nil && *user.Avatar == info.Picture
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateUserByGoogleInfo(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleStaff, user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_NoChange() {
	ctx := context.Background()
	userID := uuid.NewString()
	originalName := "Nama Tetap"
	originalUser := &domain.User{
		UserID: userID,
		Name:   originalName,
		AuditFields: domain.AuditFields{
			LastUpdatedAt: time.Now().Add(-time.Hour),
			LastUpdatedBy: "somebodyElse",
		},
	}
	req := dto.UpdateUserRequest{Name: &originalName}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(originalUser, nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(originalUser, user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), "admin-1").
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, userID, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestListUsers_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUsers", ctx, 10, 0).Return(nil, expectedErr).Once()

	users, err := suite.service.ListUsers(ctx, 10, 0)

	suite.Require().Error(err)
	suite.Nil(users)
	suite.ErrorIs(err, expectedErr)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
