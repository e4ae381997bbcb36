package carrier

import (
	"errors"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Vehicle kinds recognized by the fleet.
const (
	VehicleKindVan        = "van"
	VehicleKindTruck      = "truck"
	VehicleKindMotorcycle = "motorcycle"
)

var (
	// ErrPlateIsRequired is returned when attempting to create a vehicle without a license plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle is the transport unit operated by a carrier. Its capacity bounds
// the shipment weight the carrier can accept.
type Vehicle struct {
	id         kernel.ID
	plate      string
	kind       string
	capacityKg float64

	isConstructed bool
}

// NewVehicle creates a Vehicle awaiting persistence. The identifier is
// assigned by storage afterwards via Identify.
func NewVehicle(plate string, kind string, capacityKg float64) (*Vehicle, error) {
	v := &Vehicle{
		isConstructed: true,
	}

	if err := errors.Join(
		v.setPlate(plate),
		v.setKind(kind),
		v.setCapacityKg(capacityKg),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistence.
func RestoreVehicle(id kernel.ID, plate string, kind string, capacityKg float64) (*Vehicle, error) {
	v, err := NewVehicle(plate, kind, capacityKg)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}

	v.id = id
	return v, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// Identify assigns the storage-generated identifier once.
func (v *Vehicle) Identify(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if v.id.Validate() == nil {
		return errs.NewValueIsInvalidErrorWithCause("id", errors.New("vehicle identifier is already assigned"))
	}
	v.id = id
	return nil
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() kernel.ID {
	return v.id
}

// Plate returns the vehicle license plate.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Kind returns the vehicle kind, e.g. "van" or "truck".
func (v *Vehicle) Kind() string {
	return v.kind
}

// CapacityKg returns the maximum shipment weight the vehicle carries, in kilograms.
func (v *Vehicle) CapacityKg() float64 {
	return v.capacityKg
}

func (v *Vehicle) setPlate(plate string) error {
	if strings.TrimSpace(plate) == "" {
		return ErrPlateIsRequired
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setKind(kind string) error {
	if strings.TrimSpace(kind) == "" {
		return errs.NewValueIsRequiredError("kind")
	}
	v.kind = kind
	return nil
}

func (v *Vehicle) setCapacityKg(capacityKg float64) error {
	if capacityKg <= 0 {
		return errs.NewValueIsRequiredError("capacityKg")
	}
	v.capacityKg = capacityKg
	return nil
}
