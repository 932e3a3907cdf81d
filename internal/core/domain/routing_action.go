package domain

import "time"

// RoutingActionStatus indicates the progress of a routing instruction.
type RoutingActionStatus string

const (
	RoutingPending    RoutingActionStatus = "PENDING"
	RoutingInProgress RoutingActionStatus = "IN_PROGRESS"
	RoutingDone       RoutingActionStatus = "DONE"
)

// ValidRoutingActionStatus reports whether the given value is a known status.
func ValidRoutingActionStatus(s RoutingActionStatus) bool {
	switch s {
	case RoutingPending, RoutingInProgress, RoutingDone:
		return true
	}
	return false
}

// RoutingPriority indicates how urgently a routing instruction must be handled.
type RoutingPriority string

const (
	PriorityLow    RoutingPriority = "LOW"
	PriorityNormal RoutingPriority = "NORMAL"
	PriorityHigh   RoutingPriority = "HIGH"
	PriorityUrgent RoutingPriority = "URGENT"
)

// ValidRoutingPriority reports whether the given value is a known priority.
func ValidRoutingPriority(p RoutingPriority) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// RoutingAction (disposisi) is an internal instruction attached to an incoming
// letter directing a person or unit to act on it. It cannot exist without its
// parent letter.
type RoutingAction struct {
	RoutingID        string              `json:"routingID"` // Primary Key (UUID)
	IncomingLetterID string              `json:"incomingLetterID"`
	FromUserID       string              `json:"fromUserID"`
	ToUserID         *string             `json:"toUserID,omitempty"`
	DestinationLabel string              `json:"destinationLabel"` // Free-text target unit/person
	Instruction      string              `json:"instruction"`
	Status           RoutingActionStatus `json:"status"`
	Priority         RoutingPriority     `json:"priority"`
	DueDate          *time.Time          `json:"dueDate,omitempty"`
	Note             *string             `json:"note,omitempty"`
	AuditFields
}
