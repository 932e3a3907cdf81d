package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
	"github.com/sintas-dev/sintas_backend/internal/handlers"
	"github.com/sintas-dev/sintas_backend/internal/platform/config"
)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, requestingUserID string) (*domain.Category, error) {
	args := m.Called(ctx, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Test Suite ---
type CategoryHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCategoryService *MockCategoryService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *CategoryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "sintas-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockCategoryService = new(MockCategoryService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger routes in tests
	}
	services := &portssvc.ServiceContainer{
		Category: suite.mockCategoryService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *CategoryHandlerTestSuite) authorizedRequest(method, url string, body []byte, userID string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CategoryHandlerTestSuite) TestCreateCategory_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateCategoryRequest{Name: "Undangan", Code: "UND", Description: "Invitation letters"}
	created := &domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        reqBody.Name,
		Code:        reqBody.Code,
		Description: reqBody.Description,
	}

	suite.mockCategoryService.On("CreateCategory", mock.Anything, reqBody, userID).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.authorizedRequest(http.MethodPost, "/api/v1/categories", body, userID)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CategoryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.CategoryID, resp.CategoryID)
	suite.Equal("UND", resp.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_DuplicateCode() {
	userID := uuid.NewString()
	reqBody := dto.CreateCategoryRequest{Name: "Undangan", Code: "UND"}

	suite.mockCategoryService.On("CreateCategory", mock.Anything, reqBody, userID).
		Return(nil, apperrors.ErrDuplicate).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.authorizedRequest(http.MethodPost, "/api/v1/categories", body, userID)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestCreateCategory_MissingAuth() {
	body, _ := json.Marshal(dto.CreateCategoryRequest{Name: "Undangan", Code: "UND"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCategoryService.AssertNotCalled(suite.T(), "CreateCategory")
}

func (suite *CategoryHandlerTestSuite) TestGetCategory_NotFound() {
	userID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockCategoryService.On("GetCategoryByID", mock.Anything, categoryID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authorizedRequest(http.MethodGet, "/api/v1/categories/"+categoryID, nil, userID)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestListCategories_Success() {
	userID := uuid.NewString()
	categories := []domain.Category{
		{CategoryID: uuid.NewString(), Name: "Nota Dinas", Code: "ND"},
		{CategoryID: uuid.NewString(), Name: "Undangan", Code: "UND"},
	}

	suite.mockCategoryService.On("ListCategories", mock.Anything).Return(categories, nil).Once()

	w := suite.authorizedRequest(http.MethodGet, "/api/v1/categories", nil, userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListCategoriesResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Categories, 2)
	suite.Equal("ND", resp.Categories[0].Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func (suite *CategoryHandlerTestSuite) TestDeleteCategory_StillReferenced() {
	userID := uuid.NewString()
	categoryID := uuid.NewString()

	suite.mockCategoryService.On("DeleteCategory", mock.Anything, categoryID).
		Return(apperrors.ErrConflict).Once()

	w := suite.authorizedRequest(http.MethodDelete, "/api/v1/categories/"+categoryID, nil, userID)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockCategoryService.AssertExpectations(suite.T())
}

func TestCategoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}
