package domain

import "time"

// OutgoingLetterStatus indicates where an outgoing letter sits in its lifecycle.
type OutgoingLetterStatus string

const (
	OutgoingDraft    OutgoingLetterStatus = "DRAFT"
	OutgoingSent     OutgoingLetterStatus = "SENT"
	OutgoingArchived OutgoingLetterStatus = "ARCHIVED"
)

// ValidOutgoingLetterStatus reports whether the given value is a known status.
func ValidOutgoingLetterStatus(s OutgoingLetterStatus) bool {
	switch s {
	case OutgoingDraft, OutgoingSent, OutgoingArchived:
		return true
	}
	return false
}

// OutgoingLetter represents a correspondence record sent from the organization.
// LetterNumber is system-generated when the caller does not supply one.
type OutgoingLetter struct {
	LetterID       string               `json:"letterID"` // Primary Key (UUID)
	LetterNumber   string               `json:"letterNumber"`
	LetterDate     time.Time            `json:"letterDate"`
	Destination    string               `json:"destination"`
	Subject        string               `json:"subject"`
	AttachmentNote *string              `json:"attachmentNote,omitempty"`
	Sensitivity    Sensitivity          `json:"sensitivity"`
	Status         OutgoingLetterStatus `json:"status"`
	Note           *string              `json:"note,omitempty"`
	FileRef        *string              `json:"fileRef,omitempty"`
	BodyHTML       *string              `json:"bodyHtml,omitempty"`
	CategoryID     *string              `json:"categoryID,omitempty"`
	AuthorID       string               `json:"authorID"`
	AuditFields
}
