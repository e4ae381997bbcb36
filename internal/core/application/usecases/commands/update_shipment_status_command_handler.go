package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/notifications"
)

// UpdateShipmentStatusCommandHandler moves a shipment through its lifecycle.
// The aggregate enforces the transition rules; the handler persists the
// change with its history entry, broadcasts it, and schedules a notification
// email once the transaction commits.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
	enqueuer   ports.JobEnqueuer
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status updates.
func NewUpdateShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.EventPublisher,
	enqueuer ports.JobEnqueuer,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		enqueuer:   enqueuer,
	}
}

// Handle processes one status update. Redundant transitions surface
// shipment.ErrStatusUnchanged and persist nothing.
func (h UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, command UpdateShipmentStatusCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, command.ShipmentID())
	if err != nil {
		return nil, err
	}

	owner, err := uow.UserRepository().Get(ctx, aggregate.UserID())
	if err != nil {
		return nil, err
	}

	entry, descriptor, err := aggregate.TransitionTo(command.Target(), command.Comment())
	if err != nil {
		return nil, err
	}

	if err := shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err := shipmentRepo.AppendTransition(ctx, entry); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.PublishTransition(descriptor)

	h.enqueuer.Enqueue(notifications.QueueEmails, notifications.ShipmentStatusChangedPayload{
		ShipmentID:     aggregate.ID().Int64(),
		RecipientEmail: owner.Email(),
		RecipientName:  owner.Name(),
		NewStatus:      descriptor.New.Description(),
	}, 0)

	return aggregate, nil
}
