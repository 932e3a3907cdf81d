package models

import "time"

// OutgoingLetter represents an outgoing letter row.
type OutgoingLetter struct {
	LetterID       string    `db:"letter_id"`
	LetterNumber   string    `db:"letter_number"`
	LetterDate     time.Time `db:"letter_date"`
	Destination    string    `db:"destination"`
	Subject        string    `db:"subject"`
	AttachmentNote *string   `db:"attachment_note"`
	Sensitivity    string    `db:"sensitivity"`
	Status         string    `db:"status"`
	Note           *string   `db:"note"`
	FileRef        *string   `db:"file_ref"`
	BodyHTML       *string   `db:"body_html"`
	CategoryID     *string   `db:"category_id"`
	AuthorID       string    `db:"author_id"`
	AuditFields
}
