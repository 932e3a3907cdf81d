package repositories

import (
	"context"
	"time"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// ArchiveEntryFilter narrows list queries over archive entries.
type ArchiveEntryFilter struct {
	Kind   *domain.ArchiveKind
	Search *string // Matches archive number, description, or location
	Limit  int
	Offset int
}

// LetterStatusCascade carries the status the referenced letter must move to as
// part of an archive mutation. At most one field is set, matching the entry's
// kind; both writes happen in the same transaction as the entry itself.
type LetterStatusCascade struct {
	IncomingStatus *domain.IncomingLetterStatus
	OutgoingStatus *domain.OutgoingLetterStatus
}

// ArchiveEntryReader defines read operations for archive entries
type ArchiveEntryReader interface {
	// FindArchiveEntryByID retrieves a specific archive entry by its ID.
	FindArchiveEntryByID(ctx context.Context, archiveID string) (*domain.ArchiveEntry, error)

	// FindArchiveEntryByLetter retrieves the entry referencing the given letter,
	// if any.
	FindArchiveEntryByLetter(ctx context.Context, kind domain.ArchiveKind, letterID string) (*domain.ArchiveEntry, error)

	// FindArchiveEntries retrieves a filtered, paginated list of archive entries.
	FindArchiveEntries(ctx context.Context, filter ArchiveEntryFilter) ([]domain.ArchiveEntry, error)

	// FindLastArchiveNumber returns the greatest in-use archive number with the
	// given prefix, ordered numerically (length before lexicographic, so
	// sequences past 999 still sort correctly). Returns apperrors.ErrNotFound
	// when no entry matches.
	FindLastArchiveNumber(ctx context.Context, prefix string) (string, error)
}

// ArchiveEntryWriter defines write operations for archive entries
type ArchiveEntryWriter interface {
	// SaveArchiveEntry persists a new archive entry and applies the letter
	// status cascade in one transaction. Returns apperrors.ErrDuplicate when
	// the archive number or the letter reference is already taken.
	SaveArchiveEntry(ctx context.Context, entry domain.ArchiveEntry, cascade LetterStatusCascade) error

	// UpdateArchiveEntry updates the mutable fields of an existing entry
	// (date, description, location, file reference).
	UpdateArchiveEntry(ctx context.Context, entry domain.ArchiveEntry) error

	// DeleteArchiveEntry removes an entry and applies the letter status
	// reversal in one transaction, stamping the letter with updatedAt.
	DeleteArchiveEntry(ctx context.Context, archiveID string, cascade LetterStatusCascade, updatedAt time.Time) error
}

// ArchiveEntryRepositoryFacade combines all archive-entry repository interfaces
type ArchiveEntryRepositoryFacade interface {
	ArchiveEntryReader
	ArchiveEntryWriter
}
