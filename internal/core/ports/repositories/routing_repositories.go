package repositories

import (
	"context"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// RoutingActionFilter narrows list queries over routing actions.
type RoutingActionFilter struct {
	IncomingLetterID *string
	Status           *domain.RoutingActionStatus
	FromUserID       *string
	ToUserID         *string
	Limit            int
	Offset           int
}

// RoutingActionReader defines read operations for routing actions
type RoutingActionReader interface {
	// FindRoutingActionByID retrieves a specific routing action by its ID.
	FindRoutingActionByID(ctx context.Context, routingID string) (*domain.RoutingAction, error)

	// FindRoutingActions retrieves a filtered, paginated list of routing actions.
	FindRoutingActions(ctx context.Context, filter RoutingActionFilter) ([]domain.RoutingAction, error)

	// CountOpenSiblingActions counts routing actions of the same parent letter
	// that are not DONE, excluding the given action.
	CountOpenSiblingActions(ctx context.Context, incomingLetterID string, excludeRoutingID string) (int64, error)
}

// RoutingActionWriter defines write operations for routing actions.
// The optional parentStatus on save/update carries the cascaded status of the
// parent incoming letter; when non-nil both writes happen in one transaction.
type RoutingActionWriter interface {
	// SaveRoutingAction persists a new routing action, atomically updating the
	// parent letter's status when parentStatus is non-nil.
	SaveRoutingAction(ctx context.Context, action domain.RoutingAction, parentStatus *domain.IncomingLetterStatus) error

	// UpdateRoutingAction updates an existing routing action, atomically
	// updating the parent letter's status when parentStatus is non-nil.
	UpdateRoutingAction(ctx context.Context, action domain.RoutingAction, parentStatus *domain.IncomingLetterStatus) error

	// DeleteRoutingAction removes a routing action.
	DeleteRoutingAction(ctx context.Context, routingID string) error
}

// RoutingActionRepositoryFacade combines all routing-action repository interfaces
type RoutingActionRepositoryFacade interface {
	RoutingActionReader
	RoutingActionWriter
}
