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

// archiveEntryService implements the ArchiveEntrySvcFacade interface
type archiveEntryService struct {
	BaseService
	archiveRepo  portsrepo.ArchiveEntryRepositoryFacade
	incomingRepo portsrepo.IncomingLetterReader
	outgoingRepo portsrepo.OutgoingLetterReader
	clock        Clock
}

// NewArchiveEntryService creates a new archive entry service
func NewArchiveEntryService(archiveRepo portsrepo.ArchiveEntryRepositoryFacade, incomingRepo portsrepo.IncomingLetterReader, outgoingRepo portsrepo.OutgoingLetterReader, clock Clock) portssvc.ArchiveEntrySvcFacade {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &archiveEntryService{archiveRepo: archiveRepo, incomingRepo: incomingRepo, outgoingRepo: outgoingRepo, clock: clock}
}

var _ portssvc.ArchiveEntrySvcFacade = (*archiveEntryService)(nil)

func (s *archiveEntryService) CreateArchiveEntry(ctx context.Context, req dto.CreateArchiveEntryRequest, requestingUserID string) (*domain.ArchiveEntry, error) {
	letterID, err := letterReferenceForKind(req)
	if err != nil {
		return nil, err
	}

	// The letter must exist and the archive cascade must move it to ARCHIVED.
	cascade := portsrepo.LetterStatusCascade{}
	switch req.Kind {
	case domain.ArchiveIncoming:
		letter, err := s.incomingRepo.FindIncomingLetterByID(ctx, letterID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("incoming letter %s does not exist: %w", letterID, apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to load incoming letter: %w", err)
		}
		next, ok := domain.NextIncomingStatus(letter.Status, domain.EventArchived)
		if !ok {
			return nil, fmt.Errorf("letter is already archived: %w", apperrors.ErrConflict)
		}
		cascade.IncomingStatus = &next
	case domain.ArchiveOutgoing:
		letter, err := s.outgoingRepo.FindOutgoingLetterByID(ctx, letterID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("outgoing letter %s does not exist: %w", letterID, apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to load outgoing letter: %w", err)
		}
		next, ok := domain.NextOutgoingStatus(letter.Status, domain.EventArchived)
		if !ok {
			return nil, fmt.Errorf("letter is already archived: %w", apperrors.ErrConflict)
		}
		cascade.OutgoingStatus = &next
	}

	existing, err := s.archiveRepo.FindArchiveEntryByLetter(ctx, req.Kind, letterID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing archive entry")
		return nil, fmt.Errorf("failed to check for existing archive entry: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("letter is already archived as %s: %w", existing.ArchiveNumber, apperrors.ErrDuplicate)
	}

	now := s.clock.Now()
	archiveDate := now
	if req.ArchiveDate != nil {
		archiveDate = *req.ArchiveDate
	}

	entry := domain.ArchiveEntry{
		ArchiveID:   uuid.NewString(),
		ArchiveDate: archiveDate,
		Kind:        req.Kind,
		Description: req.Description,
		Location:    req.Location,
		FileRef:     req.FileRef,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}
	if req.Kind == domain.ArchiveIncoming {
		entry.IncomingLetterID = &letterID
	} else {
		entry.OutgoingLetterID = &letterID
	}

	// Concurrent archives can compute the same number; the unique index rejects
	// the loser, which recomputes and retries.
	year := archiveDate.Year()
	var saveErr error
	for attempt := 0; attempt < numberAllocationRetries; attempt++ {
		last, err := s.archiveRepo.FindLastArchiveNumber(ctx, archiveNumberPrefix(year))
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load last archive number: %w", err)
		}
		entry.ArchiveNumber = nextArchiveNumber(last, year)

		saveErr = s.archiveRepo.SaveArchiveEntry(ctx, entry, cascade)
		if saveErr == nil {
			break
		}
		if !errors.Is(saveErr, apperrors.ErrDuplicate) {
			s.LogError(ctx, saveErr, "Failed to save archive entry", slog.String("archive_id", entry.ArchiveID))
			return nil, saveErr
		}
		s.LogDebug(ctx, "Archive number taken by concurrent create, retrying",
			slog.String("archive_number", entry.ArchiveNumber))
	}
	if saveErr != nil {
		s.LogError(ctx, saveErr, "Failed to allocate archive number", slog.Int("attempts", numberAllocationRetries))
		return nil, fmt.Errorf("failed to allocate archive number: %w", saveErr)
	}

	s.LogInfo(ctx, "Letter archived",
		slog.String("archive_id", entry.ArchiveID),
		slog.String("archive_number", entry.ArchiveNumber),
		slog.String("kind", string(entry.Kind)))
	return &entry, nil
}

func (s *archiveEntryService) GetArchiveEntryByID(ctx context.Context, archiveID string) (*domain.ArchiveEntry, error) {
	entry, err := s.archiveRepo.FindArchiveEntryByID(ctx, archiveID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find archive entry", slog.String("archive_id", archiveID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *archiveEntryService) ListArchiveEntries(ctx context.Context, req dto.ListArchiveEntriesRequest) ([]domain.ArchiveEntry, error) {
	filter := portsrepo.ArchiveEntryFilter{
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	if req.Kind != "" {
		kind := domain.ArchiveKind(req.Kind)
		filter.Kind = &kind
	}
	if req.Search != "" {
		filter.Search = &req.Search
	}

	entries, err := s.archiveRepo.FindArchiveEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list archive entries")
		return nil, fmt.Errorf("failed to list archive entries: %w", err)
	}
	if entries == nil {
		entries = []domain.ArchiveEntry{}
	}
	return entries, nil
}

func (s *archiveEntryService) UpdateArchiveEntry(ctx context.Context, archiveID string, req dto.UpdateArchiveEntryRequest, requestingUserID string) (*domain.ArchiveEntry, error) {
	entry, err := s.archiveRepo.FindArchiveEntryByID(ctx, archiveID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.ArchiveDate != nil {
		entry.ArchiveDate = *req.ArchiveDate
		changed = true
	}
	if req.Description != nil {
		entry.Description = req.Description
		changed = true
	}
	if req.Location != nil {
		entry.Location = req.Location
		changed = true
	}
	if req.FileRef != nil {
		entry.FileRef = req.FileRef
		changed = true
	}

	if !changed {
		return entry, nil
	}

	entry.LastUpdatedAt = s.clock.Now()
	entry.LastUpdatedBy = requestingUserID

	if err := s.archiveRepo.UpdateArchiveEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update archive entry", slog.String("archive_id", archiveID))
		return nil, err
	}

	s.LogInfo(ctx, "Archive entry updated", slog.String("archive_id", archiveID))
	return entry, nil
}

func (s *archiveEntryService) DeleteArchiveEntry(ctx context.Context, archiveID string) error {
	entry, err := s.archiveRepo.FindArchiveEntryByID(ctx, archiveID)
	if err != nil {
		return err
	}

	// Removing the entry reopens the letter; the landing status comes from the
	// ARCHIVE_REMOVED transition so the table stays the single source of truth.
	cascade := portsrepo.LetterStatusCascade{}
	if entry.Kind == domain.ArchiveIncoming {
		if next, ok := domain.NextIncomingStatus(domain.IncomingArchived, domain.EventArchiveRemoved); ok {
			cascade.IncomingStatus = &next
		}
	} else {
		if next, ok := domain.NextOutgoingStatus(domain.OutgoingArchived, domain.EventArchiveRemoved); ok {
			cascade.OutgoingStatus = &next
		}
	}

	if err := s.archiveRepo.DeleteArchiveEntry(ctx, archiveID, cascade, s.clock.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete archive entry", slog.String("archive_id", archiveID))
		return err
	}

	s.LogInfo(ctx, "Archive entry deleted",
		slog.String("archive_id", archiveID),
		slog.String("archive_number", entry.ArchiveNumber))
	return nil
}

// letterReferenceForKind checks that exactly the letter reference matching the
// requested kind is present and returns it.
func letterReferenceForKind(req dto.CreateArchiveEntryRequest) (string, error) {
	switch req.Kind {
	case domain.ArchiveIncoming:
		if req.IncomingLetterID == nil || *req.IncomingLetterID == "" {
			return "", fmt.Errorf("incomingLetterID is required for kind INCOMING: %w", apperrors.ErrValidation)
		}
		if req.OutgoingLetterID != nil && *req.OutgoingLetterID != "" {
			return "", fmt.Errorf("outgoingLetterID must be empty for kind INCOMING: %w", apperrors.ErrValidation)
		}
		return *req.IncomingLetterID, nil
	case domain.ArchiveOutgoing:
		if req.OutgoingLetterID == nil || *req.OutgoingLetterID == "" {
			return "", fmt.Errorf("outgoingLetterID is required for kind OUTGOING: %w", apperrors.ErrValidation)
		}
		if req.IncomingLetterID != nil && *req.IncomingLetterID != "" {
			return "", fmt.Errorf("incomingLetterID must be empty for kind OUTGOING: %w", apperrors.ErrValidation)
		}
		return *req.OutgoingLetterID, nil
	default:
		return "", fmt.Errorf("unknown archive kind %s: %w", req.Kind, apperrors.ErrValidation)
	}
}
