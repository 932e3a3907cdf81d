package domain

import "time"

// Sensitivity classifies the handling urgency/confidentiality of a letter.
type Sensitivity string

const (
	SensitivityNormal       Sensitivity = "NORMAL"
	SensitivityUrgent       Sensitivity = "URGENT"
	SensitivityVeryUrgent   Sensitivity = "VERY_URGENT"
	SensitivityConfidential Sensitivity = "CONFIDENTIAL"
)

// ValidSensitivity reports whether the given value is a known sensitivity level.
func ValidSensitivity(s Sensitivity) bool {
	switch s {
	case SensitivityNormal, SensitivityUrgent, SensitivityVeryUrgent, SensitivityConfidential:
		return true
	}
	return false
}

// IncomingLetterStatus indicates where an incoming letter sits in its lifecycle.
type IncomingLetterStatus string

const (
	IncomingNew        IncomingLetterStatus = "NEW"
	IncomingInProgress IncomingLetterStatus = "IN_PROGRESS"
	IncomingDone       IncomingLetterStatus = "DONE"
	IncomingArchived   IncomingLetterStatus = "ARCHIVED"
)

// ValidIncomingLetterStatus reports whether the given value is a known status.
func ValidIncomingLetterStatus(s IncomingLetterStatus) bool {
	switch s {
	case IncomingNew, IncomingInProgress, IncomingDone, IncomingArchived:
		return true
	}
	return false
}

// IncomingLetter represents a correspondence record received by the organization.
type IncomingLetter struct {
	LetterID       string               `json:"letterID"`     // Primary Key (UUID)
	LetterNumber   string               `json:"letterNumber"` // Unique, caller supplied
	LetterDate     time.Time            `json:"letterDate"`
	ReceivedDate   time.Time            `json:"receivedDate"`
	Sender         string               `json:"sender"`
	Subject        string               `json:"subject"`
	AttachmentNote *string              `json:"attachmentNote,omitempty"`
	Sensitivity    Sensitivity          `json:"sensitivity"`
	Status         IncomingLetterStatus `json:"status"`
	Note           *string              `json:"note,omitempty"`
	FileRef        *string              `json:"fileRef,omitempty"`
	CategoryID     *string              `json:"categoryID,omitempty"`
	AuditFields
}
