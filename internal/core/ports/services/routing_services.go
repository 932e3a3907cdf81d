package services

import (
	"context"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

// RoutingActionReaderSvc defines read operations for routing actions
type RoutingActionReaderSvc interface {
	// GetRoutingActionByID retrieves a routing action by ID.
	GetRoutingActionByID(ctx context.Context, routingID string) (*domain.RoutingAction, error)

	// ListRoutingActions retrieves a filtered, paginated list of routing actions.
	ListRoutingActions(ctx context.Context, req dto.ListRoutingActionsRequest) ([]domain.RoutingAction, error)
}

// RoutingActionWriterSvc defines write operations for routing actions
type RoutingActionWriterSvc interface {
	// CreateRoutingAction routes a letter onward, moving a NEW parent letter to
	// IN_PROGRESS.
	CreateRoutingAction(ctx context.Context, req dto.CreateRoutingActionRequest, requestingUserID string) (*domain.RoutingAction, error)

	// UpdateRoutingAction updates an action; completing the last open action
	// moves the parent letter to DONE.
	UpdateRoutingAction(ctx context.Context, routingID string, req dto.UpdateRoutingActionRequest, requestingUserID string) (*domain.RoutingAction, error)

	// DeleteRoutingAction removes a routing action.
	DeleteRoutingAction(ctx context.Context, routingID string) error
}

// RoutingActionSvcFacade combines all routing-action service interfaces
type RoutingActionSvcFacade interface {
	RoutingActionReaderSvc
	RoutingActionWriterSvc
}
