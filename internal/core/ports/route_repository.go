package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for routes.
type RouteRepository interface {
	// Add persists a new route and assigns its storage identifier.
	Add(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route by identifier.
	Get(ctx context.Context, id kernel.ID) (*route.Route, error)

	// GetAllPlanned retrieves routes still accepting assignments.
	GetAllPlanned(ctx context.Context) ([]*route.Route, error)
}
