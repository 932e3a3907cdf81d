package services

import (
	"context"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

// ArchiveEntryReaderSvc defines read operations for archive entries
type ArchiveEntryReaderSvc interface {
	// GetArchiveEntryByID retrieves an archive entry by ID.
	GetArchiveEntryByID(ctx context.Context, archiveID string) (*domain.ArchiveEntry, error)

	// ListArchiveEntries retrieves a filtered, paginated list of archive entries.
	ListArchiveEntries(ctx context.Context, req dto.ListArchiveEntriesRequest) ([]domain.ArchiveEntry, error)
}

// ArchiveEntryWriterSvc defines write operations for archive entries
type ArchiveEntryWriterSvc interface {
	// CreateArchiveEntry archives a letter, allocating the next archive number
	// for the year and moving the letter to ARCHIVED.
	CreateArchiveEntry(ctx context.Context, req dto.CreateArchiveEntryRequest, requestingUserID string) (*domain.ArchiveEntry, error)

	// UpdateArchiveEntry updates the descriptive fields of an entry.
	UpdateArchiveEntry(ctx context.Context, archiveID string, req dto.UpdateArchiveEntryRequest, requestingUserID string) (*domain.ArchiveEntry, error)

	// DeleteArchiveEntry removes an entry and reverts the letter's status
	// (incoming to DONE, outgoing to SENT).
	DeleteArchiveEntry(ctx context.Context, archiveID string) error
}

// ArchiveEntrySvcFacade combines all archive-entry service interfaces
type ArchiveEntrySvcFacade interface {
	ArchiveEntryReaderSvc
	ArchiveEntryWriterSvc
}
