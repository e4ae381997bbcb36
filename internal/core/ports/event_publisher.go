package ports

import (
	"shipping/internal/core/domain/model/shipment"
)

// EventPublisher defines the contract for fanning out shipment status changes
// to interested subscribers. Publishing is fire-and-forget: delivery failures
// to individual subscribers never fail the originating operation.
type EventPublisher interface {
	// PublishTransition notifies the shipment owner, shipment watchers and
	// administrators about a status change.
	PublishTransition(descriptor shipment.TransitionDescriptor)
}
