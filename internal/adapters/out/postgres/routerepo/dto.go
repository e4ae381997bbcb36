// Package routerepo provides data transfer objects and mapping functions for route persistence.
package routerepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/route"
)

// RouteDTO represents the database structure for persisting routes.
// Status is stored as its lowercase name ("planned", "active", "completed").
type RouteDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"type:varchar(255);not null"`
	StartAt     time.Time `gorm:"not null"`
	Status      string    `gorm:"type:varchar(16);not null;index"`
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// fromDomain converts a route domain entity to its database representation.
func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:          aggregate.ID().Int64(),
		Description: aggregate.Description(),
		StartAt:     aggregate.StartAt(),
		Status:      aggregate.Status(),
	}
}

// toDomain converts a database DTO to a route domain entity.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(id, dto.Description, dto.StartAt, dto.Status)
}
