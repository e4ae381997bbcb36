// Package assignmentrepo provides data transfer objects and mapping functions for assignment persistence.
// A unique index on shipment_id makes the database the final arbiter of the
// one-assignment-per-shipment rule under concurrent allocation.
package assignmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
)

// AssignmentDTO represents the database structure for persisting assignments.
type AssignmentDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ShipmentID int64     `gorm:"not null;uniqueIndex"`
	RouteID    int64     `gorm:"not null;index"`
	CarrierID  int64     `gorm:"not null;index"`
	AssignedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain entity to its database representation.
func fromDomain(aggregate *route.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:         aggregate.ID().Int64(),
		ShipmentID: aggregate.ShipmentID().Int64(),
		RouteID:    aggregate.RouteID().Int64(),
		CarrierID:  aggregate.CarrierID().Int64(),
		AssignedAt: aggregate.AssignedAt(),
	}
}

// toDomain converts a database DTO to an assignment domain entity.
func toDomain(dto AssignmentDTO) (*route.Assignment, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.NewID(dto.ShipmentID)
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.NewID(dto.RouteID)
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.NewID(dto.CarrierID)
	if err != nil {
		return nil, err
	}

	return route.RestoreAssignment(id, shipmentID, routeID, carrierID, dto.AssignedAt)
}
