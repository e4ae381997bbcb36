// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations, including the
// append-only status history table.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The destination address is flattened into the shipment row; identifiers are
// storage-assigned via the bigserial primary key.
type ShipmentDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"not null;index"`
	Street      string    `gorm:"type:varchar(255);not null"`
	Detail      string    `gorm:"type:varchar(255)"`
	City        string    `gorm:"type:varchar(128);not null"`
	Region      string    `gorm:"type:varchar(128);not null"`
	PostalCode  string    `gorm:"type:varchar(32)"`
	Country     string    `gorm:"type:varchar(64);not null"`
	WeightKg    float64   `gorm:"not null"`
	Length      float64   `gorm:"not null"`
	Width       float64   `gorm:"not null"`
	Height      float64   `gorm:"not null"`
	Volume      float64   `gorm:"not null"`
	ProductType string    `gorm:"type:varchar(128);not null"`
	Status      int       `gorm:"type:int;not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// TransitionDTO represents one row of the shipment status history.
// Rows are insert-only; they are never updated or deleted.
type TransitionDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ShipmentID int64     `gorm:"not null;index"`
	Status     int       `gorm:"type:int;not null"`
	OccurredAt time.Time `gorm:"not null"`
	Comment    string    `gorm:"type:varchar(512)"`
}

// TableName specifies the database table name for history entries.
func (TransitionDTO) TableName() string {
	return "shipment_transitions"
}

// fromDomain converts a shipment domain aggregate to its database representation.
// A zero identifier leaves ID unset so the database assigns one on insert.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	addr := aggregate.Address()
	dims := aggregate.Dimensions()

	return ShipmentDTO{
		ID:          aggregate.ID().Int64(),
		UserID:      aggregate.UserID().Int64(),
		Street:      addr.Street(),
		Detail:      addr.Detail(),
		City:        addr.City(),
		Region:      addr.Region(),
		PostalCode:  addr.PostalCode(),
		Country:     addr.Country(),
		WeightKg:    aggregate.Weight().Kilograms(),
		Length:      dims.Length(),
		Width:       dims.Width(),
		Height:      dims.Height(),
		Volume:      dims.Volume(),
		ProductType: aggregate.ProductType(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including status using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}

	address, err := shipment.NewAddress(dto.Street, dto.Detail, dto.City, dto.Region, dto.PostalCode, dto.Country)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.WeightKg)
	if err != nil {
		return nil, err
	}

	dimensions, err := kernel.NewDimensions(dto.Length, dto.Width, dto.Height)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		userID,
		address,
		weight,
		dimensions,
		dto.ProductType,
		shipment.Status(dto.Status),
		dto.CreatedAt,
	)
}

// transitionFromDomain converts a history entry to its database representation.
func transitionFromDomain(entry *shipment.Transition) TransitionDTO {
	return TransitionDTO{
		ID:         entry.ID().Int64(),
		ShipmentID: entry.ShipmentID().Int64(),
		Status:     int(entry.Status()),
		OccurredAt: entry.OccurredAt(),
		Comment:    entry.Comment(),
	}
}

// transitionToDomain converts a database DTO to a history entry.
func transitionToDomain(dto TransitionDTO) (*shipment.Transition, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.NewID(dto.ShipmentID)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreTransition(id, shipmentID, shipment.Status(dto.Status), dto.OccurredAt, dto.Comment)
}
