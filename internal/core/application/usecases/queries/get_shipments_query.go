// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentsQueryIsNotConstructed = errors.New(
	"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
)

// GetShipmentsQuery retrieves shipments, optionally narrowed to one status.
type GetShipmentsQuery struct {
	status    shipment.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a query for all shipments.
func NewGetShipmentsQuery() GetShipmentsQuery {
	return GetShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetShipmentsQueryWithStatus creates a query for shipments in one status.
func NewGetShipmentsQueryWithStatus(status int) (GetShipmentsQuery, error) {
	target := shipment.Status(status)
	if err := target.Validate(); err != nil {
		return GetShipmentsQuery{}, err
	}

	return GetShipmentsQuery{
		status:    target,
		hasStatus: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// Status returns the status filter and whether one was set.
func (q GetShipmentsQuery) Status() (shipment.Status, bool) {
	return q.status, q.hasStatus
}

// ShipmentResponse is the shipment read model shared by the listing queries.
type ShipmentResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Street      string    `json:"street"`
	City        string    `json:"city"`
	Region      string    `json:"region"`
	WeightKg    float64   `json:"weight_kg"`
	Volume      float64   `json:"volume"`
	ProductType string    `json:"product_type"`
	Status      int       `json:"status"`
	StatusName  string    `json:"status_name"`
	CreatedAt   time.Time `json:"created_at"`
}
