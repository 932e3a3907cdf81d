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

type RoutingActionServiceTestSuite struct {
	suite.Suite
	mockRoutingRepo  *MockRoutingActionRepository
	mockIncomingRepo *MockIncomingLetterRepository
	mockUserRepo     *MockUserRepository
	service          portssvc.RoutingActionSvcFacade
}

func (suite *RoutingActionServiceTestSuite) SetupTest() {
	suite.mockRoutingRepo = new(MockRoutingActionRepository)
	suite.mockIncomingRepo = new(MockIncomingLetterRepository)
	suite.mockUserRepo = new(MockUserRepository)
	clock := fixedClock{now: time.Date(2025, time.August, 20, 9, 0, 0, 0, time.UTC)}
	suite.service = services.NewRoutingActionService(suite.mockRoutingRepo, suite.mockIncomingRepo, suite.mockUserRepo, clock)
}

func (suite *RoutingActionServiceTestSuite) TestCreateRoutingAction_MovesNewLetterToInProgress() {
	ctx := context.Background()
	letterID := "letter-1"

	suite.mockIncomingRepo.On("FindIncomingLetterByID", ctx, letterID).
		Return(&domain.IncomingLetter{LetterID: letterID, Status: domain.IncomingNew}, nil).Once()
	suite.mockRoutingRepo.On("SaveRoutingAction", ctx, mock.MatchedBy(func(action domain.RoutingAction) bool {
		return action.IncomingLetterID == letterID &&
			action.Status == domain.RoutingPending &&
			action.Priority == domain.PriorityNormal &&
			action.FromUserID == "kepala-1"
	}), mock.MatchedBy(func(status *domain.IncomingLetterStatus) bool {
		return status != nil && *status == domain.IncomingInProgress
	})).Return(nil).Once()

	action, err := suite.service.CreateRoutingAction(ctx, dto.CreateRoutingActionRequest{
		IncomingLetterID: letterID,
		DestinationLabel: "Kasubbag Umum",
		Instruction:      "Tindak lanjuti",
	}, "kepala-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RoutingPending, action.Status)
	suite.mockRoutingRepo.AssertExpectations(suite.T())
}

func (suite *RoutingActionServiceTestSuite) TestCreateRoutingAction_InProgressLetterUnchanged() {
	ctx := context.Background()
	letterID := "letter-2"

	suite.mockIncomingRepo.On("FindIncomingLetterByID", ctx, letterID).
		Return(&domain.IncomingLetter{LetterID: letterID, Status: domain.IncomingInProgress}, nil).Once()
	suite.mockRoutingRepo.On("SaveRoutingAction", ctx, mock.AnythingOfType("domain.RoutingAction"),
		(*domain.IncomingLetterStatus)(nil)).Return(nil).Once()

	_, err := suite.service.CreateRoutingAction(ctx, dto.CreateRoutingActionRequest{
		IncomingLetterID: letterID,
		DestinationLabel: "Bendahara",
		Instruction:      "Untuk diketahui",
	}, "kepala-1")

	suite.Require().NoError(err)
	suite.mockRoutingRepo.AssertExpectations(suite.T())
}

func (suite *RoutingActionServiceTestSuite) TestCreateRoutingAction_LetterMissing() {
	ctx := context.Background()

	suite.mockIncomingRepo.On("FindIncomingLetterByID", ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	action, err := suite.service.CreateRoutingAction(ctx, dto.CreateRoutingActionRequest{
		IncomingLetterID: "missing",
		DestinationLabel: "Staf",
		Instruction:      "Proses",
	}, "kepala-1")

	suite.Require().Error(err)
	suite.Nil(action)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRoutingRepo.AssertNotCalled(suite.T(), "SaveRoutingAction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoutingActionServiceTestSuite) TestCreateRoutingAction_UnknownRecipient() {
	ctx := context.Background()
	letterID := "letter-3"
	toUser := "ghost"

	suite.mockIncomingRepo.On("FindIncomingLetterByID", ctx, letterID).
		Return(&domain.IncomingLetter{LetterID: letterID, Status: domain.IncomingNew}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, toUser).Return(nil, apperrors.ErrNotFound).Once()

	action, err := suite.service.CreateRoutingAction(ctx, dto.CreateRoutingActionRequest{
		IncomingLetterID: letterID,
		ToUserID:         &toUser,
		DestinationLabel: "Staf",
		Instruction:      "Proses",
	}, "kepala-1")

	suite.Require().Error(err)
	suite.Nil(action)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RoutingActionServiceTestSuite) TestUpdateRoutingAction_LastDoneCompletesLetter() {
	ctx := context.Background()
	routingID := "routing-1"
	letterID := "letter-1"
	done := domain.RoutingDone

	suite.mockRoutingRepo.On("FindRoutingActionByID", ctx, routingID).
		Return(&domain.RoutingAction{
			RoutingID:        routingID,
			IncomingLetterID: letterID,
			Status:           domain.RoutingInProgress,
			Priority:         domain.PriorityNormal,
		}, nil).Once()
	suite.mockRoutingRepo.On("CountOpenSiblingActions", ctx, letterID, routingID).
		Return(int64(0), nil).Once()
	suite.mockIncomingRepo.On("FindIncomingLetterByID", ctx, letterID).
		Return(&domain.IncomingLetter{LetterID: letterID, Status: domain.IncomingInProgress}, nil).Once()
	suite.mockRoutingRepo.On("UpdateRoutingAction", ctx, mock.MatchedBy(func(action domain.RoutingAction) bool {
		return action.Status == domain.RoutingDone
	}), mock.MatchedBy(func(status *domain.IncomingLetterStatus) bool {
		return status != nil && *status == domain.IncomingDone
	})).Return(nil).Once()

	action, err := suite.service.UpdateRoutingAction(ctx, routingID, dto.UpdateRoutingActionRequest{
		Status: &done,
	}, "staff-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RoutingDone, action.Status)
	suite.mockRoutingRepo.AssertExpectations(suite.T())
}

func (suite *RoutingActionServiceTestSuite) TestUpdateRoutingAction_OpenSiblingsKeepLetter() {
	ctx := context.Background()
	routingID := "routing-2"
	letterID := "letter-1"
	done := domain.RoutingDone

	suite.mockRoutingRepo.On("FindRoutingActionByID", ctx, routingID).
		Return(&domain.RoutingAction{
			RoutingID:        routingID,
			IncomingLetterID: letterID,
			Status:           domain.RoutingPending,
			Priority:         domain.PriorityNormal,
		}, nil).Once()
	suite.mockRoutingRepo.On("CountOpenSiblingActions", ctx, letterID, routingID).
		Return(int64(2), nil).Once()
	suite.mockRoutingRepo.On("UpdateRoutingAction", ctx, mock.AnythingOfType("domain.RoutingAction"),
		(*domain.IncomingLetterStatus)(nil)).Return(nil).Once()

	_, err := suite.service.UpdateRoutingAction(ctx, routingID, dto.UpdateRoutingActionRequest{
		Status: &done,
	}, "staff-1")

	suite.Require().NoError(err)
	suite.mockIncomingRepo.AssertNotCalled(suite.T(), "FindIncomingLetterByID", mock.Anything, mock.Anything)
	suite.mockRoutingRepo.AssertExpectations(suite.T())
}

func TestRoutingActionService(t *testing.T) {
	suite.Run(t, new(RoutingActionServiceTestSuite))
}
