package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/core/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

type OutgoingLetterServiceTestSuite struct {
	suite.Suite
	mockOutgoingRepo *MockOutgoingLetterRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.OutgoingLetterSvcFacade
	now              time.Time
}

func (suite *OutgoingLetterServiceTestSuite) SetupTest() {
	suite.mockOutgoingRepo = new(MockOutgoingLetterRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.now = time.Date(2025, time.August, 20, 9, 30, 0, 0, time.UTC)
	suite.service = services.NewOutgoingLetterService(suite.mockOutgoingRepo, suite.mockCategoryRepo, fixedClock{now: suite.now})
}

func (suite *OutgoingLetterServiceTestSuite) TestCreateOutgoingLetter_GeneratesNextNumber() {
	ctx := context.Background()
	letterDate := time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	suite.mockOutgoingRepo.On("FindOutgoingNumbersByDateRange", ctx, monthStart, nextMonth).
		Return([]string{"001/OUT/VIII/2025", "002/OUT/VIII/2025"}, nil).Once()
	suite.mockOutgoingRepo.On("SaveOutgoingLetter", ctx, mock.MatchedBy(func(letter domain.OutgoingLetter) bool {
		return letter.LetterNumber == "003/OUT/VIII/2025" &&
			letter.Status == domain.OutgoingDraft &&
			letter.Sensitivity == domain.SensitivityNormal &&
			letter.AuthorID == "user-1"
	})).Return(nil).Once()

	letter, err := suite.service.CreateOutgoingLetter(ctx, dto.CreateOutgoingLetterRequest{
		LetterDate:  letterDate,
		Destination: "Dinas Pendidikan",
		Subject:     "Undangan rapat koordinasi",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("003/OUT/VIII/2025", letter.LetterNumber)
	suite.Equal(domain.OutgoingDraft, letter.Status)
	suite.mockOutgoingRepo.AssertExpectations(suite.T())
}

func (suite *OutgoingLetterServiceTestSuite) TestCreateOutgoingLetter_RetriesOnNumberRace() {
	ctx := context.Background()
	letterDate := time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)

	// First attempt loses the race, second attempt sees the new number and wins.
	suite.mockOutgoingRepo.On("FindOutgoingNumbersByDateRange", ctx, mock.Anything, mock.Anything).
		Return([]string{"004/OUT/VIII/2025"}, nil).Once()
	suite.mockOutgoingRepo.On("SaveOutgoingLetter", ctx, mock.MatchedBy(func(letter domain.OutgoingLetter) bool {
		return letter.LetterNumber == "005/OUT/VIII/2025"
	})).Return(apperrors.ErrDuplicate).Once()

	suite.mockOutgoingRepo.On("FindOutgoingNumbersByDateRange", ctx, mock.Anything, mock.Anything).
		Return([]string{"004/OUT/VIII/2025", "005/OUT/VIII/2025"}, nil).Once()
	suite.mockOutgoingRepo.On("SaveOutgoingLetter", ctx, mock.MatchedBy(func(letter domain.OutgoingLetter) bool {
		return letter.LetterNumber == "006/OUT/VIII/2025"
	})).Return(nil).Once()

	letter, err := suite.service.CreateOutgoingLetter(ctx, dto.CreateOutgoingLetterRequest{
		LetterDate:  letterDate,
		Destination: "Kecamatan",
		Subject:     "Pemberitahuan",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("006/OUT/VIII/2025", letter.LetterNumber)
	suite.mockOutgoingRepo.AssertExpectations(suite.T())
}

func (suite *OutgoingLetterServiceTestSuite) TestCreateOutgoingLetter_ManualNumberDuplicate() {
	ctx := context.Background()
	manual := "090/OUT/VIII/2025"

	suite.mockOutgoingRepo.On("FindOutgoingLetterByNumber", ctx, manual).
		Return(&domain.OutgoingLetter{LetterID: "other", LetterNumber: manual}, nil).Once()

	letter, err := suite.service.CreateOutgoingLetter(ctx, dto.CreateOutgoingLetterRequest{
		LetterNumber: &manual,
		LetterDate:   time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC),
		Destination:  "Dinas Kesehatan",
		Subject:      "Balasan surat",
	}, "user-1")

	suite.Require().Error(err)
	suite.Nil(letter)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockOutgoingRepo.AssertNotCalled(suite.T(), "SaveOutgoingLetter", mock.Anything, mock.Anything)
}

func (suite *OutgoingLetterServiceTestSuite) TestPreviewNextLetterNumber() {
	ctx := context.Background()
	letterDate := time.Date(2025, time.December, 3, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	suite.mockOutgoingRepo.On("FindOutgoingNumbersByDateRange", ctx, monthStart, nextMonth).
		Return(nil, nil).Once()

	number, err := suite.service.PreviewNextLetterNumber(ctx, letterDate)

	suite.Require().NoError(err)
	suite.Equal("001/OUT/XII/2025", number)
	suite.mockOutgoingRepo.AssertExpectations(suite.T())
}

func (suite *OutgoingLetterServiceTestSuite) TestDeleteOutgoingLetter_ArchivedConflict() {
	ctx := context.Background()
	letterID := "letter-1"

	suite.mockOutgoingRepo.On("FindOutgoingLetterByID", ctx, letterID).
		Return(&domain.OutgoingLetter{LetterID: letterID, Status: domain.OutgoingArchived}, nil).Once()

	err := suite.service.DeleteOutgoingLetter(ctx, letterID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockOutgoingRepo.AssertNotCalled(suite.T(), "DeleteOutgoingLetter", mock.Anything, mock.Anything)
}

func TestOutgoingLetterService(t *testing.T) {
	suite.Run(t, new(OutgoingLetterServiceTestSuite))
}
