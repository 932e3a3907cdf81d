package dto

import (
	"time"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// CreateRoutingActionRequest defines the data needed to route a letter onward.
// The sender is the authenticated user; the recipient is either a registered
// user or a free-form destination label.
type CreateRoutingActionRequest struct {
	IncomingLetterID string                 `json:"incomingLetterID" binding:"required"`
	ToUserID         *string                `json:"toUserID"`
	DestinationLabel string                 `json:"destinationLabel" binding:"required"`
	Instruction      string                 `json:"instruction" binding:"required"`
	Priority         domain.RoutingPriority `json:"priority" binding:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
	DueDate          *time.Time             `json:"dueDate"`
	Note             *string                `json:"note"`
}

// UpdateRoutingActionRequest defines the data allowed for updating a routing action.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateRoutingActionRequest struct {
	ToUserID         *string                     `json:"toUserID"`
	DestinationLabel *string                     `json:"destinationLabel"`
	Instruction      *string                     `json:"instruction"`
	Status           *domain.RoutingActionStatus `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS DONE"`
	Priority         *domain.RoutingPriority     `json:"priority" binding:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
	DueDate          *time.Time                  `json:"dueDate"`
	Note             *string                     `json:"note"`
}

// ListRoutingActionsRequest defines query parameters for listing routing actions.
type ListRoutingActionsRequest struct {
	IncomingLetterID string `form:"incomingLetterID"`
	Status           string `form:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS DONE"`
	FromUserID       string `form:"fromUserID"`
	ToUserID         string `form:"toUserID"`
	Limit            int    `form:"limit,default=20"`
	Offset           int    `form:"offset,default=0"`
}

// RoutingActionResponse defines the data returned for a routing action.
type RoutingActionResponse struct {
	RoutingID        string                     `json:"routingID"`
	IncomingLetterID string                     `json:"incomingLetterID"`
	FromUserID       string                     `json:"fromUserID"`
	ToUserID         *string                    `json:"toUserID,omitempty"`
	DestinationLabel string                     `json:"destinationLabel"`
	Instruction      string                     `json:"instruction"`
	Status           domain.RoutingActionStatus `json:"status"`
	Priority         domain.RoutingPriority     `json:"priority"`
	DueDate          *time.Time                 `json:"dueDate,omitempty"`
	Note             *string                    `json:"note,omitempty"`
	CreatedAt        time.Time                  `json:"createdAt"`
	CreatedBy        string                     `json:"createdBy"`
	LastUpdatedAt    time.Time                  `json:"lastUpdatedAt"`
	LastUpdatedBy    string                     `json:"lastUpdatedBy"`
}

// ToRoutingActionResponse converts a domain.RoutingAction to RoutingActionResponse DTO
func ToRoutingActionResponse(action *domain.RoutingAction) RoutingActionResponse {
	return RoutingActionResponse{
		RoutingID:        action.RoutingID,
		IncomingLetterID: action.IncomingLetterID,
		FromUserID:       action.FromUserID,
		ToUserID:         action.ToUserID,
		DestinationLabel: action.DestinationLabel,
		Instruction:      action.Instruction,
		Status:           action.Status,
		Priority:         action.Priority,
		DueDate:          action.DueDate,
		Note:             action.Note,
		CreatedAt:        action.CreatedAt,
		CreatedBy:        action.CreatedBy,
		LastUpdatedAt:    action.LastUpdatedAt,
		LastUpdatedBy:    action.LastUpdatedBy,
	}
}

// ListRoutingActionsResponse wraps the list of routing actions.
type ListRoutingActionsResponse struct {
	RoutingActions []RoutingActionResponse `json:"routingActions"`
}

// ToListRoutingActionsResponse converts a slice of domain.RoutingAction to ListRoutingActionsResponse DTO
func ToListRoutingActionsResponse(actions []domain.RoutingAction) ListRoutingActionsResponse {
	res := make([]RoutingActionResponse, len(actions))
	for i, action := range actions {
		res[i] = ToRoutingActionResponse(&action)
	}
	return ListRoutingActionsResponse{RoutingActions: res}
}
