package models

import "time"

// IncomingLetter represents an incoming letter row. Status and sensitivity
// are stored as plain text; the domain layer owns the allowed values.
type IncomingLetter struct {
	LetterID       string    `db:"letter_id"`
	LetterNumber   string    `db:"letter_number"`
	LetterDate     time.Time `db:"letter_date"`
	ReceivedDate   time.Time `db:"received_date"`
	Sender         string    `db:"sender"`
	Subject        string    `db:"subject"`
	AttachmentNote *string   `db:"attachment_note"`
	Sensitivity    string    `db:"sensitivity"`
	Status         string    `db:"status"`
	Note           *string   `db:"note"`
	FileRef        *string   `db:"file_ref"`
	CategoryID     *string   `db:"category_id"`
	AuditFields
}
