package models

import "time"

// RoutingAction represents a disposisi row attached to an incoming letter.
type RoutingAction struct {
	RoutingID        string     `db:"routing_id"`
	IncomingLetterID string     `db:"incoming_letter_id"`
	FromUserID       string     `db:"from_user_id"`
	ToUserID         *string    `db:"to_user_id"`
	DestinationLabel string     `db:"destination_label"`
	Instruction      string     `db:"instruction"`
	Status           string     `db:"status"`
	Priority         string     `db:"priority"`
	DueDate          *time.Time `db:"due_date"`
	Note             *string    `db:"note"`
	AuditFields
}
