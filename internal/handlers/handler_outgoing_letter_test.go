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

// --- Mock OutgoingLetterService ---
type MockOutgoingLetterService struct {
	mock.Mock
}

func (m *MockOutgoingLetterService) GetOutgoingLetterByID(ctx context.Context, letterID string) (*domain.OutgoingLetter, error) {
	args := m.Called(ctx, letterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutgoingLetter), args.Error(1)
}
func (m *MockOutgoingLetterService) ListOutgoingLetters(ctx context.Context, req dto.ListOutgoingLettersRequest) ([]domain.OutgoingLetter, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OutgoingLetter), args.Error(1)
}
func (m *MockOutgoingLetterService) PreviewNextLetterNumber(ctx context.Context, letterDate time.Time) (string, error) {
	args := m.Called(ctx, letterDate)
	return args.String(0), args.Error(1)
}
func (m *MockOutgoingLetterService) CreateOutgoingLetter(ctx context.Context, req dto.CreateOutgoingLetterRequest, requestingUserID string) (*domain.OutgoingLetter, error) {
	args := m.Called(ctx, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutgoingLetter), args.Error(1)
}
func (m *MockOutgoingLetterService) UpdateOutgoingLetter(ctx context.Context, letterID string, req dto.UpdateOutgoingLetterRequest, requestingUserID string) (*domain.OutgoingLetter, error) {
	args := m.Called(ctx, letterID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutgoingLetter), args.Error(1)
}
func (m *MockOutgoingLetterService) DeleteOutgoingLetter(ctx context.Context, letterID string) error {
	args := m.Called(ctx, letterID)
	return args.Error(0)
}

var _ portssvc.OutgoingLetterSvcFacade = (*MockOutgoingLetterService)(nil)

// --- Test Suite ---
type OutgoingLetterHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLetterService *MockOutgoingLetterService
	jwtSecret         string
}

func (suite *OutgoingLetterHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *OutgoingLetterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockLetterService = new(MockOutgoingLetterService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger routes in tests
	}
	services := &portssvc.ServiceContainer{
		OutgoingLetter: suite.mockLetterService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *OutgoingLetterHandlerTestSuite) authorizedRequest(method, url string, body []byte, userID string) *httptest.ResponseRecorder {
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

func (suite *OutgoingLetterHandlerTestSuite) TestCreateOutgoingLetter_GeneratedNumber() {
	userID := uuid.NewString()
	letterDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	reqBody := dto.CreateOutgoingLetterRequest{
		LetterDate:  letterDate,
		Destination: "Dinas Pendidikan",
		Subject:     "Undangan rapat koordinasi",
	}
	created := &domain.OutgoingLetter{
		LetterID:     uuid.NewString(),
		LetterNumber: "001/OUT/III/2025",
		LetterDate:   letterDate,
		Destination:  reqBody.Destination,
		Subject:      reqBody.Subject,
		Status:       domain.OutgoingDraft,
		AuthorID:     userID,
	}

	suite.mockLetterService.On("CreateOutgoingLetter", mock.Anything, reqBody, userID).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.authorizedRequest(http.MethodPost, "/api/v1/outgoing-letters", body, userID)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.OutgoingLetterResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("001/OUT/III/2025", resp.LetterNumber)
	suite.Equal(domain.OutgoingDraft, resp.Status)
	suite.mockLetterService.AssertExpectations(suite.T())
}

func (suite *OutgoingLetterHandlerTestSuite) TestCreateOutgoingLetter_NumberRace() {
	userID := uuid.NewString()
	reqBody := dto.CreateOutgoingLetterRequest{
		LetterDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Destination: "Dinas Pendidikan",
		Subject:     "Undangan rapat koordinasi",
	}

	suite.mockLetterService.On("CreateOutgoingLetter", mock.Anything, reqBody, userID).
		Return(nil, apperrors.ErrDuplicate).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.authorizedRequest(http.MethodPost, "/api/v1/outgoing-letters", body, userID)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockLetterService.AssertExpectations(suite.T())
}

func (suite *OutgoingLetterHandlerTestSuite) TestPreviewNextLetterNumber() {
	userID := uuid.NewString()
	letterDate := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)

	suite.mockLetterService.On("PreviewNextLetterNumber", mock.Anything, letterDate).
		Return("017/OUT/XI/2025", nil).Once()

	w := suite.authorizedRequest(http.MethodGet, "/api/v1/outgoing-letters/generate-number?date=2025-11-05", nil, userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.NextLetterNumberResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("017/OUT/XI/2025", resp.LetterNumber)
	suite.mockLetterService.AssertExpectations(suite.T())
}

func (suite *OutgoingLetterHandlerTestSuite) TestPreviewNextLetterNumber_BadDate() {
	userID := uuid.NewString()

	w := suite.authorizedRequest(http.MethodGet, "/api/v1/outgoing-letters/generate-number?date=05-11-2025", nil, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLetterService.AssertNotCalled(suite.T(), "PreviewNextLetterNumber")
}

func (suite *OutgoingLetterHandlerTestSuite) TestListOutgoingLetters_DateRange() {
	userID := uuid.NewString()
	expectedReq := dto.ListOutgoingLettersRequest{
		Status: "SENT",
		From:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Limit:  20,
	}
	letters := []domain.OutgoingLetter{
		{LetterID: uuid.NewString(), LetterNumber: "003/OUT/I/2025", Status: domain.OutgoingSent},
	}

	suite.mockLetterService.On("ListOutgoingLetters", mock.Anything, expectedReq).Return(letters, nil).Once()

	url := "/api/v1/outgoing-letters?status=SENT&from=2025-01-01&to=2025-02-01"
	w := suite.authorizedRequest(http.MethodGet, url, nil, userID)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListOutgoingLettersResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Letters, 1)
	suite.mockLetterService.AssertExpectations(suite.T())
}

func (suite *OutgoingLetterHandlerTestSuite) TestDeleteOutgoingLetter_Archived() {
	userID := uuid.NewString()
	letterID := uuid.NewString()

	suite.mockLetterService.On("DeleteOutgoingLetter", mock.Anything, letterID).
		Return(apperrors.ErrConflict).Once()

	w := suite.authorizedRequest(http.MethodDelete, "/api/v1/outgoing-letters/"+letterID, nil, userID)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockLetterService.AssertExpectations(suite.T())
}

func TestOutgoingLetterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OutgoingLetterHandlerTestSuite))
}
