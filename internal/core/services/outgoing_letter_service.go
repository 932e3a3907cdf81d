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
)

// numberAllocationRetries bounds how often a create retries after losing a
// numbering race to a concurrent insert.
const numberAllocationRetries = 3

// outgoingLetterService implements the OutgoingLetterSvcFacade interface
type outgoingLetterService struct {
	BaseService
	outgoingRepo portsrepo.OutgoingLetterRepositoryFacade
	categoryRepo portsrepo.CategoryReader
	clock        Clock
}

// NewOutgoingLetterService creates a new outgoing letter service
func NewOutgoingLetterService(outgoingRepo portsrepo.OutgoingLetterRepositoryFacade, categoryRepo portsrepo.CategoryReader, clock Clock) portssvc.OutgoingLetterSvcFacade {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &outgoingLetterService{outgoingRepo: outgoingRepo, categoryRepo: categoryRepo, clock: clock}
}

var _ portssvc.OutgoingLetterSvcFacade = (*outgoingLetterService)(nil)

// nextLetterNumber computes the next sequential letter number for the month of
// letterDate from the numbers already on file.
func (s *outgoingLetterService) nextLetterNumber(ctx context.Context, letterDate time.Time) (string, error) {
	from, to := monthBounds(letterDate)
	numbers, err := s.outgoingRepo.FindOutgoingNumbersByDateRange(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("failed to load letter numbers for the month: %w", err)
	}
	return formatOutgoingNumber(nextOutgoingSequence(numbers), letterDate), nil
}

func (s *outgoingLetterService) PreviewNextLetterNumber(ctx context.Context, letterDate time.Time) (string, error) {
	if letterDate.IsZero() {
		letterDate = s.clock.Now()
	}
	return s.nextLetterNumber(ctx, letterDate)
}

func (s *outgoingLetterService) CreateOutgoingLetter(ctx context.Context, req dto.CreateOutgoingLetterRequest, requestingUserID string) (*domain.OutgoingLetter, error) {
	if req.CategoryID != nil {
		if err := s.validateCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	manualNumber := req.LetterNumber != nil && *req.LetterNumber != ""
	if manualNumber {
		existing, err := s.outgoingRepo.FindOutgoingLetterByNumber(ctx, *req.LetterNumber)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to check for existing letter number")
			return nil, fmt.Errorf("failed to check for existing letter number: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("letter number %s is already in use: %w", *req.LetterNumber, apperrors.ErrDuplicate)
		}
	}

	now := s.clock.Now()
	sensitivity := req.Sensitivity
	if sensitivity == "" {
		sensitivity = domain.SensitivityNormal
	}
	status := domain.OutgoingDraft
	if req.Status != nil {
		status = *req.Status
	}

	letter := domain.OutgoingLetter{
		LetterID:       uuid.NewString(),
		LetterDate:     req.LetterDate,
		Destination:    req.Destination,
		Subject:        req.Subject,
		BodyHTML:       req.BodyHTML,
		AttachmentNote: req.AttachmentNote,
		Sensitivity:    sensitivity,
		Status:         status,
		AuthorID:       requestingUserID,
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

	if manualNumber {
		letter.LetterNumber = *req.LetterNumber
		if err := s.outgoingRepo.SaveOutgoingLetter(ctx, letter); err != nil {
			s.LogError(ctx, err, "Failed to save outgoing letter", slog.String("letter_id", letter.LetterID))
			return nil, err
		}
	} else {
		// Two concurrent creates can compute the same number; the unique index
		// rejects the loser, which recomputes and retries.
		var saveErr error
		for attempt := 0; attempt < numberAllocationRetries; attempt++ {
			number, err := s.nextLetterNumber(ctx, req.LetterDate)
			if err != nil {
				return nil, err
			}
			letter.LetterNumber = number

			saveErr = s.outgoingRepo.SaveOutgoingLetter(ctx, letter)
			if saveErr == nil {
				break
			}
			if !errors.Is(saveErr, apperrors.ErrDuplicate) {
				s.LogError(ctx, saveErr, "Failed to save outgoing letter", slog.String("letter_id", letter.LetterID))
				return nil, saveErr
			}
			s.LogDebug(ctx, "Letter number taken by concurrent create, retrying",
				slog.String("letter_number", number))
		}
		if saveErr != nil {
			s.LogError(ctx, saveErr, "Failed to allocate outgoing letter number",
				slog.Int("attempts", numberAllocationRetries))
			return nil, fmt.Errorf("failed to allocate letter number: %w", saveErr)
		}
	}

	s.LogInfo(ctx, "Outgoing letter created",
		slog.String("letter_id", letter.LetterID),
		slog.String("letter_number", letter.LetterNumber))
	return &letter, nil
}

func (s *outgoingLetterService) GetOutgoingLetterByID(ctx context.Context, letterID string) (*domain.OutgoingLetter, error) {
	letter, err := s.outgoingRepo.FindOutgoingLetterByID(ctx, letterID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find outgoing letter", slog.String("letter_id", letterID))
		}
		return nil, err
	}
	return letter, nil
}

func (s *outgoingLetterService) ListOutgoingLetters(ctx context.Context, req dto.ListOutgoingLettersRequest) ([]domain.OutgoingLetter, error) {
	filter := portsrepo.OutgoingLetterFilter{
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if req.Status != "" {
		status := domain.OutgoingLetterStatus(req.Status)
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

	letters, err := s.outgoingRepo.FindOutgoingLetters(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list outgoing letters")
		return nil, fmt.Errorf("failed to list outgoing letters: %w", err)
	}
	if letters == nil {
		letters = []domain.OutgoingLetter{}
	}
	return letters, nil
}

func (s *outgoingLetterService) UpdateOutgoingLetter(ctx context.Context, letterID string, req dto.UpdateOutgoingLetterRequest, requestingUserID string) (*domain.OutgoingLetter, error) {
	letter, err := s.outgoingRepo.FindOutgoingLetterByID(ctx, letterID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.LetterNumber != nil && *req.LetterNumber != letter.LetterNumber {
		existing, err := s.outgoingRepo.FindOutgoingLetterByNumber(ctx, *req.LetterNumber)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check for existing letter number: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("letter number %s is already in use: %w", *req.LetterNumber, apperrors.ErrDuplicate)
		}
		letter.LetterNumber = *req.LetterNumber
		changed = true
	}
	if req.LetterDate != nil {
		letter.LetterDate = *req.LetterDate
		changed = true
	}
	if req.Destination != nil && *req.Destination != letter.Destination {
		letter.Destination = *req.Destination
		changed = true
	}
	if req.Subject != nil && *req.Subject != letter.Subject {
		letter.Subject = *req.Subject
		changed = true
	}
	if req.BodyHTML != nil {
		letter.BodyHTML = req.BodyHTML
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
		if !domain.ValidOutgoingLetterStatus(*req.Status) {
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

	if err := s.outgoingRepo.UpdateOutgoingLetter(ctx, *letter); err != nil {
		s.LogError(ctx, err, "Failed to update outgoing letter", slog.String("letter_id", letterID))
		return nil, err
	}

	s.LogInfo(ctx, "Outgoing letter updated", slog.String("letter_id", letterID))
	return letter, nil
}

func (s *outgoingLetterService) DeleteOutgoingLetter(ctx context.Context, letterID string) error {
	letter, err := s.outgoingRepo.FindOutgoingLetterByID(ctx, letterID)
	if err != nil {
		return err
	}
	if letter.Status == domain.OutgoingArchived {
		return fmt.Errorf("letter is archived, remove the archive entry first: %w", apperrors.ErrConflict)
	}

	if err := s.outgoingRepo.DeleteOutgoingLetter(ctx, letterID); err != nil {
		s.LogError(ctx, err, "Failed to delete outgoing letter", slog.String("letter_id", letterID))
		return err
	}

	s.LogInfo(ctx, "Outgoing letter deleted",
		slog.String("letter_id", letterID),
		slog.String("letter_number", letter.LetterNumber))
	return nil
}

func (s *outgoingLetterService) validateCategory(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("category %s does not exist: %w", categoryID, apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to validate category: %w", err)
	}
	return nil
}
