package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
)

// AssignmentRepository defines the persistence contract for shipment-to-route
// assignments. Storage enforces at most one assignment per shipment.
type AssignmentRepository interface {
	// Add persists a new assignment and assigns its storage identifier.
	// Returns errs.ErrObjectAlreadyExists (wrapped) when the shipment is
	// already assigned concurrently.
	Add(ctx context.Context, aggregate *route.Assignment) error

	// GetByShipmentID retrieves the assignment for a shipment, if any.
	GetByShipmentID(ctx context.Context, shipmentID kernel.ID) (*route.Assignment, error)
}
