package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/notifications"
)

// CreateShipmentCommandHandler registers new shipments. The shipment is
// persisted together with its initial Pending transition, and a confirmation
// email job is enqueued once the transaction commits.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	enqueuer   ports.JobEnqueuer
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, enqueuer ports.JobEnqueuer) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		enqueuer:   enqueuer,
	}
}

// Handle persists the new shipment and schedules the confirmation email.
// The owning user must exist; errs.ErrObjectNotFound is returned otherwise.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, command CreateShipmentCommand) (*shipment.Shipment, error) {
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

	owner, err := uow.UserRepository().Get(ctx, command.UserID())
	if err != nil {
		return nil, err
	}

	aggregate, err := shipment.NewShipment(
		command.UserID(),
		command.Address(),
		command.Weight(),
		command.Dimensions(),
		command.ProductType(),
	)
	if err != nil {
		return nil, err
	}

	if err := uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.enqueuer.Enqueue(notifications.QueueEmails, notifications.ShipmentCreatedPayload{
		ShipmentID:     aggregate.ID().Int64(),
		RecipientEmail: owner.Email(),
		RecipientName:  owner.Name(),
		ProductType:    aggregate.ProductType(),
		City:           aggregate.Address().City(),
	}, 0)

	return aggregate, nil
}
