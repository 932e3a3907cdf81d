package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/core/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

type ArchiveEntryServiceTestSuite struct {
	suite.Suite
	mockArchiveRepo  *MockArchiveEntryRepository
	mockIncomingRepo *MockIncomingLetterRepository
	mockOutgoingRepo *MockOutgoingLetterRepository
	service          portssvc.ArchiveEntrySvcFacade
	now              time.Time
}

func (suite *ArchiveEntryServiceTestSuite) SetupTest() {
	suite.mockArchiveRepo = new(MockArchiveEntryRepository)
	suite.mockIncomingRepo = new(MockIncomingLetterRepository)
	suite.mockOutgoingRepo = new(MockOutgoingLetterRepository)
	suite.now = time.Date(2025, time.August, 20, 14, 0, 0, 0, time.UTC)
	suite.service = services.NewArchiveEntryService(suite.mockArchiveRepo, suite.mockIncomingRepo, suite.mockOutgoingRepo, fixedClock{now: suite.now})
}

func (suite *ArchiveEntryServiceTestSuite) TestCreateArchiveEntry_FirstOfYear() {
	ctx := context.Background()
	letterID := "letter-1"

	suite.mockIncomingRepo.On("FindIncomingLetterByID", ctx, letterID).
		Return(&domain.IncomingLetter{LetterID: letterID, Status: domain.IncomingDone}, nil).Once()
	suite.mockArchiveRepo.On("FindArchiveEntryByLetter", ctx, domain.ArchiveIncoming, letterID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockArchiveRepo.On("FindLastArchiveNumber", ctx, "AR/2025/").
		Return("", apperrors.ErrNotFound).Once()
	suite.mockArchiveRepo.On("SaveArchiveEntry", ctx, mock.MatchedBy(func(entry domain.ArchiveEntry) bool {
		return entry.ArchiveNumber == "AR/2025/001" &&
			entry.Kind == domain.ArchiveIncoming &&
			entry.IncomingLetterID != nil && *entry.IncomingLetterID == letterID
	}), mock.MatchedBy(func(cascade portsrepo.LetterStatusCascade) bool {
		return cascade.IncomingStatus != nil && *cascade.IncomingStatus == domain.IncomingArchived &&
			cascade.OutgoingStatus == nil
	})).Return(nil).Once()

	entry, err := suite.service.CreateArchiveEntry(ctx, dto.CreateArchiveEntryRequest{
		Kind:             domain.ArchiveIncoming,
		IncomingLetterID: &letterID,
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("AR/2025/001", entry.ArchiveNumber)
	suite.Equal(suite.now, entry.ArchiveDate)
	suite.mockArchiveRepo.AssertExpectations(suite.T())
}

func (suite *ArchiveEntryServiceTestSuite) TestCreateArchiveEntry_ContinuesSequence() {
	ctx := context.Background()
	letterID := "letter-9"

	suite.mockOutgoingRepo.On("FindOutgoingLetterByID", ctx, letterID).
		Return(&domain.OutgoingLetter{LetterID: letterID, Status: domain.OutgoingSent}, nil).Once()
	suite.mockArchiveRepo.On("FindArchiveEntryByLetter", ctx, domain.ArchiveOutgoing, letterID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockArchiveRepo.On("FindLastArchiveNumber", ctx, "AR/2025/").
		Return("AR/2025/041", nil).Once()
	suite.mockArchiveRepo.On("SaveArchiveEntry", ctx, mock.MatchedBy(func(entry domain.ArchiveEntry) bool {
		return entry.ArchiveNumber == "AR/2025/042"
	}), mock.MatchedBy(func(cascade portsrepo.LetterStatusCascade) bool {
		return cascade.OutgoingStatus != nil && *cascade.OutgoingStatus == domain.OutgoingArchived
	})).Return(nil).Once()

	entry, err := suite.service.CreateArchiveEntry(ctx, dto.CreateArchiveEntryRequest{
		Kind:             domain.ArchiveOutgoing,
		OutgoingLetterID: &letterID,
	}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("AR/2025/042", entry.ArchiveNumber)
	suite.mockArchiveRepo.AssertExpectations(suite.T())
}

func (suite *ArchiveEntryServiceTestSuite) TestCreateArchiveEntry_LetterAlreadyArchived() {
	ctx := context.Background()
	letterID := "letter-1"

	suite.mockIncomingRepo.On("FindIncomingLetterByID", ctx, letterID).
		Return(&domain.IncomingLetter{LetterID: letterID, Status: domain.IncomingArchived}, nil).Once()

	entry, err := suite.service.CreateArchiveEntry(ctx, dto.CreateArchiveEntryRequest{
		Kind:             domain.ArchiveIncoming,
		IncomingLetterID: &letterID,
	}, "admin-1")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockArchiveRepo.AssertNotCalled(suite.T(), "SaveArchiveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ArchiveEntryServiceTestSuite) TestCreateArchiveEntry_DuplicateEntry() {
	ctx := context.Background()
	letterID := "letter-1"

	suite.mockIncomingRepo.On("FindIncomingLetterByID", ctx, letterID).
		Return(&domain.IncomingLetter{LetterID: letterID, Status: domain.IncomingDone}, nil).Once()
	suite.mockArchiveRepo.On("FindArchiveEntryByLetter", ctx, domain.ArchiveIncoming, letterID).
		Return(&domain.ArchiveEntry{ArchiveID: "existing", ArchiveNumber: "AR/2025/007"}, nil).Once()

	entry, err := suite.service.CreateArchiveEntry(ctx, dto.CreateArchiveEntryRequest{
		Kind:             domain.ArchiveIncoming,
		IncomingLetterID: &letterID,
	}, "admin-1")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ArchiveEntryServiceTestSuite) TestCreateArchiveEntry_KindReferenceMismatch() {
	ctx := context.Background()
	letterID := "letter-1"

	entry, err := suite.service.CreateArchiveEntry(ctx, dto.CreateArchiveEntryRequest{
		Kind:             domain.ArchiveIncoming,
		OutgoingLetterID: &letterID,
	}, "admin-1")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ArchiveEntryServiceTestSuite) TestDeleteArchiveEntry_RevertsIncomingToDone() {
	ctx := context.Background()
	archiveID := "archive-1"
	letterID := "letter-1"

	suite.mockArchiveRepo.On("FindArchiveEntryByID", ctx, archiveID).
		Return(&domain.ArchiveEntry{
			ArchiveID:        archiveID,
			ArchiveNumber:    "AR/2025/001",
			Kind:             domain.ArchiveIncoming,
			IncomingLetterID: &letterID,
		}, nil).Once()
	suite.mockArchiveRepo.On("DeleteArchiveEntry", ctx, archiveID, mock.MatchedBy(func(cascade portsrepo.LetterStatusCascade) bool {
		return cascade.IncomingStatus != nil && *cascade.IncomingStatus == domain.IncomingDone
	}), suite.now).Return(nil).Once()

	err := suite.service.DeleteArchiveEntry(ctx, archiveID)

	suite.Require().NoError(err)
	suite.mockArchiveRepo.AssertExpectations(suite.T())
}

func (suite *ArchiveEntryServiceTestSuite) TestDeleteArchiveEntry_RevertsOutgoingToSent() {
	ctx := context.Background()
	archiveID := "archive-2"
	letterID := "letter-9"

	suite.mockArchiveRepo.On("FindArchiveEntryByID", ctx, archiveID).
		Return(&domain.ArchiveEntry{
			ArchiveID:        archiveID,
			ArchiveNumber:    "AR/2025/002",
			Kind:             domain.ArchiveOutgoing,
			OutgoingLetterID: &letterID,
		}, nil).Once()
	suite.mockArchiveRepo.On("DeleteArchiveEntry", ctx, archiveID, mock.MatchedBy(func(cascade portsrepo.LetterStatusCascade) bool {
		return cascade.OutgoingStatus != nil && *cascade.OutgoingStatus == domain.OutgoingSent
	}), suite.now).Return(nil).Once()

	err := suite.service.DeleteArchiveEntry(ctx, archiveID)

	suite.Require().NoError(err)
	suite.mockArchiveRepo.AssertExpectations(suite.T())
}

func TestArchiveEntryService(t *testing.T) {
	suite.Run(t, new(ArchiveEntryServiceTestSuite))
}
