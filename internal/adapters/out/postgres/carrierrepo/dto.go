// Package carrierrepo provides data transfer objects and mapping functions for carrier persistence.
// A carrier row owns exactly one vehicle row; both are loaded together so the
// aggregate can answer capacity checks without extra round trips.
package carrierrepo

import (
	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/kernel"
)

// CarrierDTO represents the database structure for persisting carrier aggregates.
type CarrierDTO struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Available bool       `gorm:"not null;index"`
	Vehicle   VehicleDTO `gorm:"foreignKey:CarrierID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for carrier entities.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// VehicleDTO represents the vehicle owned by a carrier.
type VehicleDTO struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	CarrierID  int64   `gorm:"not null;index"`
	Plate      string  `gorm:"type:varchar(32);not null"`
	Kind       string  `gorm:"type:varchar(32);not null"`
	CapacityKg float64 `gorm:"not null"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a carrier domain aggregate to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	vehicle := aggregate.Vehicle()

	return CarrierDTO{
		ID:        aggregate.ID().Int64(),
		Name:      aggregate.Name(),
		Available: aggregate.IsAvailable(),
		Vehicle: VehicleDTO{
			ID:         vehicle.ID().Int64(),
			CarrierID:  aggregate.ID().Int64(),
			Plate:      vehicle.Plate(),
			Kind:       vehicle.Kind(),
			CapacityKg: vehicle.CapacityKg(),
		},
	}
}

// toDomain converts a database DTO to a carrier domain aggregate.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	vehicleID, err := kernel.NewID(dto.Vehicle.ID)
	if err != nil {
		return nil, err
	}

	vehicle, err := carrier.RestoreVehicle(vehicleID, dto.Vehicle.Plate, dto.Vehicle.Kind, dto.Vehicle.CapacityKg)
	if err != nil {
		return nil, err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, dto.Name, dto.Available, vehicle)
}
