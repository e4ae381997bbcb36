package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrAssignRouteCommandIsNotConstructed = errors.New(
	"AssignRouteCommand must be created via NewAssignRouteCommand constructor",
)

// AssignRouteCommand represents a request to put a shipment on a route with a
// carrier. All three identifiers are required.
type AssignRouteCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ID
	routeID    kernel.ID
	carrierID  kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignRouteCommand creates a command to assign a shipment to a route and
// carrier. Missing or non-positive identifiers are rejected, joined into one
// error.
func NewAssignRouteCommand(shipmentID, routeID, carrierID int64) (AssignRouteCommand, error) {
	sid, sidErr := kernel.NewID(shipmentID)
	rid, ridErr := kernel.NewID(routeID)
	cid, cidErr := kernel.NewID(carrierID)

	if err := errors.Join(
		requiredID("shipmentID", sidErr),
		requiredID("routeID", ridErr),
		requiredID("carrierID", cidErr),
	); err != nil {
		return AssignRouteCommand{}, err
	}

	return AssignRouteCommand{
		shipmentID: sid,
		routeID:    rid,
		carrierID:  cid,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c *AssignRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignRouteCommandIsNotConstructed)
}

// ShipmentID returns the shipment to assign.
func (c *AssignRouteCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}

// RouteID returns the target route.
func (c *AssignRouteCommand) RouteID() kernel.ID {
	return c.routeID
}

// CarrierID returns the carrier to put in charge.
func (c *AssignRouteCommand) CarrierID() kernel.ID {
	return c.carrierID
}

// requiredID renames a bare id construction failure after the parameter it
// belongs to, so joined errors identify the offending field.
func requiredID(paramName string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredError(paramName)
}
