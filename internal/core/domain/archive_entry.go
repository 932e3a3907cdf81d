package domain

import "time"

// ArchiveKind tells which side of the correspondence an archive entry files.
type ArchiveKind string

const (
	ArchiveIncoming ArchiveKind = "INCOMING"
	ArchiveOutgoing ArchiveKind = "OUTGOING"
)

// ValidArchiveKind reports whether the given value is a known archive kind.
func ValidArchiveKind(k ArchiveKind) bool {
	return k == ArchiveIncoming || k == ArchiveOutgoing
}

// ArchiveEntry marks a letter as physically/digitally filed. Exactly one of
// IncomingLetterID/OutgoingLetterID is set, matching Kind; a letter can be
// referenced by at most one entry. The entry's existence is the "archived"
// signal for the referenced letter.
type ArchiveEntry struct {
	ArchiveID        string      `json:"archiveID"`     // Primary Key (UUID)
	ArchiveNumber    string      `json:"archiveNumber"` // Unique, system-generated per year
	ArchiveDate      time.Time   `json:"archiveDate"`
	Description      *string     `json:"description,omitempty"`
	Location         *string     `json:"location,omitempty"` // Physical storage location
	FileRef          *string     `json:"fileRef,omitempty"`
	Kind             ArchiveKind `json:"kind"`
	IncomingLetterID *string     `json:"incomingLetterID,omitempty"`
	OutgoingLetterID *string     `json:"outgoingLetterID,omitempty"`
	AuditFields
}

// LetterID returns whichever letter reference is populated.
func (a ArchiveEntry) LetterID() string {
	if a.IncomingLetterID != nil {
		return *a.IncomingLetterID
	}
	if a.OutgoingLetterID != nil {
		return *a.OutgoingLetterID
	}
	return ""
}
