package carrier

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a carrier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVehicleIsRequired is returned when attempting to create a carrier without a vehicle.
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehicle")
	// ErrCarrierIsNotConstructed is returned when using an improperly initialized Carrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
)

// Carrier represents a transport operator that can be assigned to routes.
// It is an aggregate root owning its vehicle and availability flag.
//
// Business rules:
//   - A carrier must have a non-empty name and a valid vehicle
//   - Only available carriers may accept new shipments
//   - A shipment is accepted only when its weight fits the vehicle capacity;
//     volume does not constrain acceptance
type Carrier struct {
	id        kernel.ID
	name      string
	available bool
	vehicle   *Vehicle

	isConstructed bool
}

// NewCarrier creates a Carrier awaiting persistence. The identifier is
// assigned by storage afterwards via Identify. New carriers start available.
func NewCarrier(name string, vehicle *Vehicle) (*Carrier, error) {
	c := &Carrier{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setName(name),
		c.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a Carrier from persistence, including its
// stored availability.
func RestoreCarrier(id kernel.ID, name string, available bool, vehicle *Vehicle) (*Carrier, error) {
	c, err := NewCarrier(name, vehicle)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}

	c.id = id
	c.available = available
	return c, nil
}

// IsEqual compares two carriers by identifier.
func (c *Carrier) IsEqual(other *Carrier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate ensures the Carrier instance was properly constructed.
func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

// Identify assigns the storage-generated identifier once.
func (c *Carrier) Identify(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if c.id.Validate() == nil {
		return errs.NewValueIsInvalidErrorWithCause("id", errors.New("carrier identifier is already assigned"))
	}
	c.id = id
	return nil
}

// ID returns the carrier identifier.
func (c *Carrier) ID() kernel.ID {
	return c.id
}

// Name returns the carrier name.
func (c *Carrier) Name() string {
	return c.name
}

// IsAvailable reports whether the carrier can take on new shipments.
func (c *Carrier) IsAvailable() bool {
	return c.available
}

// Vehicle returns the carrier's transport unit.
func (c *Carrier) Vehicle() *Vehicle {
	return c.vehicle
}

// SetAvailability marks the carrier available or busy.
func (c *Carrier) SetAvailability(available bool) {
	c.available = available
}

// CanCarry reports whether the given weight fits the vehicle capacity.
// Availability is checked separately by the admission policy.
func (c *Carrier) CanCarry(weight kernel.Weight) bool {
	return !weight.Exceeds(c.vehicle.CapacityKg())
}

func (c *Carrier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Carrier) setVehicle(vehicle *Vehicle) error {
	if vehicle == nil {
		return ErrVehicleIsRequired
	}
	if err := vehicle.Validate(); err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}
