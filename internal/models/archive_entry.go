package models

import "time"

// ArchiveEntry represents an archive row. Exactly one of the letter
// references is set, enforced by a CHECK constraint.
type ArchiveEntry struct {
	ArchiveID        string    `db:"archive_id"`
	ArchiveNumber    string    `db:"archive_number"`
	ArchiveDate      time.Time `db:"archive_date"`
	Description      *string   `db:"description"`
	Location         *string   `db:"location"`
	FileRef          *string   `db:"file_ref"`
	Kind             string    `db:"kind"`
	IncomingLetterID *string   `db:"incoming_letter_id"`
	OutgoingLetterID *string   `db:"outgoing_letter_id"`
	AuditFields
}
