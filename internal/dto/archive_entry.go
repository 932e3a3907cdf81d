package dto

import (
	"time"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// CreateArchiveEntryRequest defines the data needed to archive a letter.
// Exactly one of IncomingLetterID and OutgoingLetterID must be set, matching Kind.
type CreateArchiveEntryRequest struct {
	Kind             domain.ArchiveKind `json:"kind" binding:"required,oneof=INCOMING OUTGOING"`
	IncomingLetterID *string            `json:"incomingLetterID"`
	OutgoingLetterID *string            `json:"outgoingLetterID"`
	ArchiveDate      *time.Time         `json:"archiveDate"` // Defaults to now when omitted
	Description      *string            `json:"description"`
	Location         *string            `json:"location"`
	FileRef          *string            `json:"fileRef"`
}

// UpdateArchiveEntryRequest defines the data allowed for updating an archive entry.
// The archive number, kind, and letter reference are immutable.
type UpdateArchiveEntryRequest struct {
	ArchiveDate *time.Time `json:"archiveDate"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	FileRef     *string    `json:"fileRef"`
}

// ListArchiveEntriesRequest defines query parameters for listing archive entries.
type ListArchiveEntriesRequest struct {
	Kind   string `form:"kind" binding:"omitempty,oneof=INCOMING OUTGOING"`
	Search string `form:"search"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ArchiveEntryResponse defines the data returned for an archive entry.
type ArchiveEntryResponse struct {
	ArchiveID        string             `json:"archiveID"`
	ArchiveNumber    string             `json:"archiveNumber"`
	ArchiveDate      time.Time          `json:"archiveDate"`
	Kind             domain.ArchiveKind `json:"kind"`
	IncomingLetterID *string            `json:"incomingLetterID,omitempty"`
	OutgoingLetterID *string            `json:"outgoingLetterID,omitempty"`
	Description      *string            `json:"description,omitempty"`
	Location         *string            `json:"location,omitempty"`
	FileRef          *string            `json:"fileRef,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
	CreatedBy        string             `json:"createdBy"`
	LastUpdatedAt    time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy    string             `json:"lastUpdatedBy"`
}

// ToArchiveEntryResponse converts a domain.ArchiveEntry to ArchiveEntryResponse DTO
func ToArchiveEntryResponse(entry *domain.ArchiveEntry) ArchiveEntryResponse {
	return ArchiveEntryResponse{
		ArchiveID:        entry.ArchiveID,
		ArchiveNumber:    entry.ArchiveNumber,
		ArchiveDate:      entry.ArchiveDate,
		Kind:             entry.Kind,
		IncomingLetterID: entry.IncomingLetterID,
		OutgoingLetterID: entry.OutgoingLetterID,
		Description:      entry.Description,
		Location:         entry.Location,
		FileRef:          entry.FileRef,
		CreatedAt:        entry.CreatedAt,
		CreatedBy:        entry.CreatedBy,
		LastUpdatedAt:    entry.LastUpdatedAt,
		LastUpdatedBy:    entry.LastUpdatedBy,
	}
}

// ListArchiveEntriesResponse wraps the list of archive entries.
type ListArchiveEntriesResponse struct {
	Entries []ArchiveEntryResponse `json:"entries"`
}

// ToListArchiveEntriesResponse converts a slice of domain.ArchiveEntry to ListArchiveEntriesResponse DTO
func ToListArchiveEntriesResponse(entries []domain.ArchiveEntry) ListArchiveEntriesResponse {
	res := make([]ArchiveEntryResponse, len(entries))
	for i, entry := range entries {
		res[i] = ToArchiveEntryResponse(&entry)
	}
	return ListArchiveEntriesResponse{Entries: res}
}
