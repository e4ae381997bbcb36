package ports

import (
	"context"

	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
type CarrierRepository interface {
	// Add persists a new carrier and assigns its storage identifier.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier with its vehicle by identifier.
	Get(ctx context.Context, id kernel.ID) (*carrier.Carrier, error)

	// GetAllAvailable retrieves carriers currently accepting shipments.
	GetAllAvailable(ctx context.Context) ([]*carrier.Carrier, error)
}
