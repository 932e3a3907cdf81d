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

// incomingLetterService implements the IncomingLetterSvcFacade interface
type incomingLetterService struct {
	BaseService
	incomingRepo portsrepo.IncomingLetterRepositoryFacade
	categoryRepo portsrepo.CategoryReader
	clock        Clock
}

// NewIncomingLetterService creates a new incoming letter service
func NewIncomingLetterService(incomingRepo portsrepo.IncomingLetterRepositoryFacade, categoryRepo portsrepo.CategoryReader, clock Clock) portssvc.IncomingLetterSvcFacade {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &incomingLetterService{incomingRepo: incomingRepo, categoryRepo: categoryRepo, clock: clock}
}

var _ portssvc.IncomingLetterSvcFacade = (*incomingLetterService)(nil)

func (s *incomingLetterService) CreateIncomingLetter(ctx context.Context, req dto.CreateIncomingLetterRequest, requestingUserID string) (*domain.IncomingLetter, error) {
	existing, err := s.incomingRepo.FindIncomingLetterByNumber(ctx, req.LetterNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing letter number")
		return nil, fmt.Errorf("failed to check for existing letter number: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("letter number %s is already registered: %w", req.LetterNumber, apperrors.ErrDuplicate)
	}

	if req.CategoryID != nil {
		if err := s.validateCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	now := s.clock.Now()
	receivedDate := now
	if req.ReceivedDate != nil {
		receivedDate = *req.ReceivedDate
	}
	sensitivity := req.Sensitivity
	if sensitivity == "" {
		sensitivity = domain.SensitivityNormal
	}

	letter := domain.IncomingLetter{
		LetterID:       uuid.NewString(),
		LetterNumber:   req.LetterNumber,
		LetterDate:     req.LetterDate,
		ReceivedDate:   receivedDate,
		Sender:         req.Sender,
		Subject:        req.Subject,
		AttachmentNote: req.AttachmentNote,
		Sensitivity:    sensitivity,
		Status:         domain.IncomingNew,
		Note:           req.Note,
		FileRef:        req.FileRef,
		CategoryID:     req.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.incomingRepo.SaveIncomingLetter(ctx, letter); err != nil {
		s.LogError(ctx, err, "Failed to save incoming letter", slog.String("letter_id", letter.LetterID))
		return nil, err
	}

	s.LogInfo(ctx, "Incoming letter registered",
		slog.String("letter_id", letter.LetterID),
		slog.String("letter_number", letter.LetterNumber))
	return &letter, nil
}

func (s *incomingLetterService) GetIncomingLetterByID(ctx context.Context, letterID string) (*domain.IncomingLetter, error) {
	letter, err := s.incomingRepo.FindIncomingLetterByID(ctx, letterID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find incoming letter", slog.String("letter_id", letterID))
		}
		return nil, err
	}
	return letter, nil
}

func (s *incomingLetterService) ListIncomingLetters(ctx context.Context, req dto.ListIncomingLettersRequest) ([]domain.IncomingLetter, error) {
	filter := portsrepo.IncomingLetterFilter{
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if req.Status != "" {
		status := domain.IncomingLetterStatus(req.Status)
		filter.Status = &status
	}
	if req.Sensitivity != "" {
		sensitivity := domain.Sensitivity(req.Sensitivity)
		filter.Sensitivity = &sensitivity
	}
	if req.CategoryID != "" {
		filter.CategoryID = &req.CategoryID
	}
	if req.Search != "" {
		filter.Search = &req.Search
	}
	if !req.From.IsZero() {
		from := req.From
		filter.From = &from
	}
	if !req.To.IsZero() {
		to := req.To
		filter.To = &to
	}

	letters, err := s.incomingRepo.FindIncomingLetters(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list incoming letters")
		return nil, fmt.Errorf("failed to list incoming letters: %w", err)
	}
	if letters == nil {
		letters = []domain.IncomingLetter{}
	}
	return letters, nil
}

func (s *incomingLetterService) UpdateIncomingLetter(ctx context.Context, letterID string, req dto.UpdateIncomingLetterRequest, requestingUserID string) (*domain.IncomingLetter, error) {
	letter, err := s.incomingRepo.FindIncomingLetterByID(ctx, letterID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.LetterNumber != nil && *req.LetterNumber != letter.LetterNumber {
		existing, err := s.incomingRepo.FindIncomingLetterByNumber(ctx, *req.LetterNumber)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check for existing letter number: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("letter number %s is already registered: %w", *req.LetterNumber, apperrors.ErrDuplicate)
		}
		letter.LetterNumber = *req.LetterNumber
		changed = true
	}
	if req.LetterDate != nil {
		letter.LetterDate = *req.LetterDate
		changed = true
	}
	if req.ReceivedDate != nil {
		letter.ReceivedDate = *req.ReceivedDate
		changed = true
	}
	if req.Sender != nil && *req.Sender != letter.Sender {
		letter.Sender = *req.Sender
		changed = true
	}
	if req.Subject != nil && *req.Subject != letter.Subject {
		letter.Subject = *req.Subject
		changed = true
	}
	if req.AttachmentNote != nil {
		letter.AttachmentNote = req.AttachmentNote
		changed = true
	}
	if req.Sensitivity != nil && *req.Sensitivity != letter.Sensitivity {
		letter.Sensitivity = *req.Sensitivity
		changed = true
	}
	if req.Status != nil && *req.Status != letter.Status {
		// Direct status writes are an administrative override; routine moves
		// come from routing and archive cascades.
		if !domain.ValidIncomingLetterStatus(*req.Status) {
			return nil, fmt.Errorf("unknown status %s: %w", *req.Status, apperrors.ErrValidation)
		}
		letter.Status = *req.Status
		changed = true
	}
	if req.Note != nil {
		letter.Note = req.Note
		changed = true
	}
	if req.FileRef != nil {
		letter.FileRef = req.FileRef
		changed = true
	}
	if req.CategoryID != nil {
		if *req.CategoryID != "" {
			if err := s.validateCategory(ctx, *req.CategoryID); err != nil {
				return nil, err
			}
			letter.CategoryID = req.CategoryID
		} else {
			letter.CategoryID = nil
		}
		changed = true
	}

	if !changed {
		return letter, nil
	}

	letter.LastUpdatedAt = s.clock.Now()
	letter.LastUpdatedBy = requestingUserID

	if err := s.incomingRepo.UpdateIncomingLetter(ctx, *letter); err != nil {
		s.LogError(ctx, err, "Failed to update incoming letter", slog.String("letter_id", letterID))
		return nil, err
	}

	s.LogInfo(ctx, "Incoming letter updated", slog.String("letter_id", letterID))
	return letter, nil
}

func (s *incomingLetterService) DeleteIncomingLetter(ctx context.Context, letterID string) error {
	letter, err := s.incomingRepo.FindIncomingLetterByID(ctx, letterID)
	if err != nil {
		return err
	}
	if letter.Status == domain.IncomingArchived {
		return fmt.Errorf("letter is archived, remove the archive entry first: %w", apperrors.ErrConflict)
	}

	if err := s.incomingRepo.DeleteIncomingLetter(ctx, letterID); err != nil {
		s.LogError(ctx, err, "Failed to delete incoming letter", slog.String("letter_id", letterID))
		return err
	}

	s.LogInfo(ctx, "Incoming letter deleted",
		slog.String("letter_id", letterID),
		slog.String("letter_number", letter.LetterNumber))
	return nil
}

func (s *incomingLetterService) validateCategory(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("category %s does not exist: %w", categoryID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to validate category: %w", err)
	}
	return nil
}
