package route

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment binds a shipment to exactly one route and carrier.
// At most one assignment may exist per shipment; the uniqueness itself is
// enforced by storage.
type Assignment struct {
	id         kernel.ID
	shipmentID kernel.ID
	routeID    kernel.ID
	carrierID  kernel.ID
	assignedAt time.Time

	isConstructed bool
}

// NewAssignment creates an Assignment awaiting persistence, stamped with the
// current time.
func NewAssignment(shipmentID, routeID, carrierID kernel.ID) (*Assignment, error) {
	a := &Assignment{
		assignedAt:    time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setShipmentID(shipmentID),
		a.setRouteID(routeID),
		a.setCarrierID(carrierID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistence.
func RestoreAssignment(id, shipmentID, routeID, carrierID kernel.ID, assignedAt time.Time) (*Assignment, error) {
	a, err := NewAssignment(shipmentID, routeID, carrierID)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}

	a.id = id
	a.assignedAt = assignedAt
	return a, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// Identify assigns the storage-generated identifier once.
func (a *Assignment) Identify(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if a.id.Validate() == nil {
		return errs.NewValueIsInvalidErrorWithCause("id", errors.New("assignment identifier is already assigned"))
	}
	a.id = id
	return nil
}

// ID returns the assignment identifier.
func (a *Assignment) ID() kernel.ID {
	return a.id
}

// ShipmentID returns the assigned shipment identifier.
func (a *Assignment) ShipmentID() kernel.ID {
	return a.shipmentID
}

// RouteID returns the target route identifier.
func (a *Assignment) RouteID() kernel.ID {
	return a.routeID
}

// CarrierID returns the carrier responsible for the shipment.
func (a *Assignment) CarrierID() kernel.ID {
	return a.carrierID
}

// AssignedAt returns when the assignment was made.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

func (a *Assignment) setShipmentID(shipmentID kernel.ID) error {
	if err := shipmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("shipmentID")
	}
	a.shipmentID = shipmentID
	return nil
}

func (a *Assignment) setRouteID(routeID kernel.ID) error {
	if err := routeID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("routeID")
	}
	a.routeID = routeID
	return nil
}

func (a *Assignment) setCarrierID(carrierID kernel.ID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("carrierID")
	}
	a.carrierID = carrierID
	return nil
}
