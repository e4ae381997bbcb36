// Package ports defines the contracts between the core and infrastructure:
// repositories, the unit of work, the job enqueuer, and the event publisher.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates
// and their status history.
type ShipmentRepository interface {
	// Add persists a new shipment and assigns its storage identifier,
	// together with the initial Pending transition.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its identifier.
	Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)

	// AppendTransition records a status change in the shipment history.
	AppendTransition(ctx context.Context, entry *shipment.Transition) error

	// GetHistory retrieves the status history of a shipment ordered by
	// occurrence time, oldest first.
	GetHistory(ctx context.Context, shipmentID kernel.ID) ([]*shipment.Transition, error)
}
