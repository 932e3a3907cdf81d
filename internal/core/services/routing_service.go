package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sintas-dev/sintas_backend/internal/apperrors"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

// routingActionService implements the RoutingActionSvcFacade interface
type routingActionService struct {
	BaseService
	routingRepo  portsrepo.RoutingActionRepositoryFacade
	incomingRepo portsrepo.IncomingLetterReader
	userRepo     portsrepo.UserReader
	clock        Clock
}

// NewRoutingActionService creates a new routing action service
func NewRoutingActionService(routingRepo portsrepo.RoutingActionRepositoryFacade, incomingRepo portsrepo.IncomingLetterReader, userRepo portsrepo.UserReader, clock Clock) portssvc.RoutingActionSvcFacade {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &routingActionService{routingRepo: routingRepo, incomingRepo: incomingRepo, userRepo: userRepo, clock: clock}
}

var _ portssvc.RoutingActionSvcFacade = (*routingActionService)(nil)

func (s *routingActionService) CreateRoutingAction(ctx context.Context, req dto.CreateRoutingActionRequest, requestingUserID string) (*domain.RoutingAction, error) {
	letter, err := s.incomingRepo.FindIncomingLetterByID(ctx, req.IncomingLetterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("incoming letter %s does not exist: %w", req.IncomingLetterID, apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to load incoming letter: %w", err)
	}

	if req.ToUserID != nil {
		if _, err := s.userRepo.FindUserByID(ctx, *req.ToUserID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("recipient user %s does not exist: %w", *req.ToUserID, apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to validate recipient: %w", err)
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}

	now := s.clock.Now()
	action := domain.RoutingAction{
		RoutingID:        uuid.NewString(),
		IncomingLetterID: req.IncomingLetterID,
		FromUserID:       requestingUserID,
		ToUserID:         req.ToUserID,
		DestinationLabel: req.DestinationLabel,
		Instruction:      req.Instruction,
		Status:           domain.RoutingPending,
		Priority:         priority,
		DueDate:          req.DueDate,
		Note:             req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	// Routing a NEW letter moves it to IN_PROGRESS in the same transaction.
	var parentStatus *domain.IncomingLetterStatus
	if next, ok := domain.NextIncomingStatus(letter.Status, domain.EventRoutingCreated); ok && next != letter.Status {
		parentStatus = &next
	}

	if err := s.routingRepo.SaveRoutingAction(ctx, action, parentStatus); err != nil {
		s.LogError(ctx, err, "Failed to save routing action", slog.String("routing_id", action.RoutingID))
		return nil, err
	}

	s.LogInfo(ctx, "Routing action created",
		slog.String("routing_id", action.RoutingID),
		slog.String("letter_id", action.IncomingLetterID))
	return &action, nil
}

func (s *routingActionService) GetRoutingActionByID(ctx context.Context, routingID string) (*domain.RoutingAction, error) {
	action, err := s.routingRepo.FindRoutingActionByID(ctx, routingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find routing action", slog.String("routing_id", routingID))
		}
		return nil, err
	}
	return action, nil
}

func (s *routingActionService) ListRoutingActions(ctx context.Context, req dto.ListRoutingActionsRequest) ([]domain.RoutingAction, error) {
	filter := portsrepo.RoutingActionFilter{
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if req.IncomingLetterID != "" {
		filter.IncomingLetterID = &req.IncomingLetterID
	}
	if req.Status != "" {
		status := domain.RoutingActionStatus(req.Status)
		filter.Status = &status
	}
	if req.FromUserID != "" {
		filter.FromUserID = &req.FromUserID
	}
	if req.ToUserID != "" {
		filter.ToUserID = &req.ToUserID
	}

	actions, err := s.routingRepo.FindRoutingActions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list routing actions")
		return nil, fmt.Errorf("failed to list routing actions: %w", err)
	}
	if actions == nil {
		actions = []domain.RoutingAction{}
	}
	return actions, nil
}

func (s *routingActionService) UpdateRoutingAction(ctx context.Context, routingID string, req dto.UpdateRoutingActionRequest, requestingUserID string) (*domain.RoutingAction, error) {
	action, err := s.routingRepo.FindRoutingActionByID(ctx, routingID)
	if err != nil {
		return nil, err
	}

	changed := false
	becameDone := false
	if req.ToUserID != nil {
		if *req.ToUserID != "" {
			if _, err := s.userRepo.FindUserByID(ctx, *req.ToUserID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("recipient user %s does not exist: %w", *req.ToUserID, apperrors.ErrValidation)
				}
				return nil, fmt.Errorf("failed to validate recipient: %w", err)
			}
			action.ToUserID = req.ToUserID
		} else {
			action.ToUserID = nil
		}
		changed = true
	}
	if req.DestinationLabel != nil && *req.DestinationLabel != action.DestinationLabel {
		action.DestinationLabel = *req.DestinationLabel
		changed = true
	}
	if req.Instruction != nil && *req.Instruction != action.Instruction {
		action.Instruction = *req.Instruction
		changed = true
	}
	if req.Status != nil && *req.Status != action.Status {
		if !domain.ValidRoutingActionStatus(*req.Status) {
			return nil, fmt.Errorf("unknown status %s: %w", *req.Status, apperrors.ErrValidation)
		}
		becameDone = *req.Status == domain.RoutingDone
		action.Status = *req.Status
		changed = true
	}
	if req.Priority != nil && *req.Priority != action.Priority {
		action.Priority = *req.Priority
		changed = true
	}
	if req.DueDate != nil {
		action.DueDate = req.DueDate
		changed = true
	}
	if req.Note != nil {
		action.Note = req.Note
		changed = true
	}

	if !changed {
		return action, nil
	}

	action.LastUpdatedAt = s.clock.Now()
	action.LastUpdatedBy = requestingUserID

	// Completing the last open action of a letter completes the letter.
	var parentStatus *domain.IncomingLetterStatus
	if becameDone {
		open, err := s.routingRepo.CountOpenSiblingActions(ctx, action.IncomingLetterID, action.RoutingID)
		if err != nil {
			s.LogError(ctx, err, "Failed to count open sibling actions", slog.String("routing_id", routingID))
			return nil, fmt.Errorf("failed to count open sibling actions: %w", err)
		}
		if open == 0 {
			letter, err := s.incomingRepo.FindIncomingLetterByID(ctx, action.IncomingLetterID)
			if err != nil {
				return nil, fmt.Errorf("failed to load incoming letter: %w", err)
			}
			if next, ok := domain.NextIncomingStatus(letter.Status, domain.EventRoutingAllDone); ok && next != letter.Status {
				parentStatus = &next
			}
		}
	}

	if err := s.routingRepo.UpdateRoutingAction(ctx, *action, parentStatus); err != nil {
		s.LogError(ctx, err, "Failed to update routing action", slog.String("routing_id", routingID))
		return nil, err
	}

	if parentStatus != nil {
		s.LogInfo(ctx, "All routing actions done, letter completed",
			slog.String("letter_id", action.IncomingLetterID))
	}
	s.LogInfo(ctx, "Routing action updated", slog.String("routing_id", routingID))
	return action, nil
}

func (s *routingActionService) DeleteRoutingAction(ctx context.Context, routingID string) error {
	if err := s.routingRepo.DeleteRoutingAction(ctx, routingID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete routing action", slog.String("routing_id", routingID))
		}
		return err
	}
	s.LogInfo(ctx, "Routing action deleted", slog.String("routing_id", routingID))
	return nil
}
