package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a request to move a shipment to a
// new status, optionally with an operator comment for the history.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ID
	target     shipment.Status
	comment    string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to change a shipment
// status. The target status must be one of the known statuses; the redundancy
// and direction rules are enforced later by the aggregate.
func NewUpdateShipmentStatusCommand(shipmentID int64, target int, comment string) (UpdateShipmentStatusCommand, error) {
	sid, sidErr := kernel.NewID(shipmentID)
	targetStatus := shipment.Status(target)

	if err := errors.Join(
		requiredID("shipmentID", sidErr),
		targetStatus.Validate(),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return UpdateShipmentStatusCommand{
		shipmentID: sid,
		target:     targetStatus,
		comment:    comment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment to update.
func (c *UpdateShipmentStatusCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}

// Target returns the requested status.
func (c *UpdateShipmentStatusCommand) Target() shipment.Status {
	return c.target
}

// Comment returns the optional operator comment.
func (c *UpdateShipmentStatusCommand) Comment() string {
	return c.comment
}
