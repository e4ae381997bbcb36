package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shipping/internal/pkg/guard"
)

var ErrGetAvailableCarriersQueryIsNotConstructed = errors.New(
	"GetAvailableCarriersQuery must be created via NewGetAvailableCarriersQuery constructor",
)

// GetAvailableCarriersQuery retrieves carriers currently accepting shipments,
// together with their vehicle capacities.
type GetAvailableCarriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableCarriersQuery creates a query for available carriers.
func NewGetAvailableCarriersQuery() GetAvailableCarriersQuery {
	return GetAvailableCarriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCarriersQueryIsNotConstructed)
}

// CarrierResponse is the carrier read model with its vehicle.
type CarrierResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	VehiclePlate string  `json:"vehicle_plate"`
	VehicleKind  string  `json:"vehicle_kind"`
	CapacityKg   float64 `json:"capacity_kg"`
}

// GetAvailableCarriersQueryHandler reads available carriers from the database.
type GetAvailableCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableCarriersQueryHandler creates a handler for carrier queries.
func NewGetAvailableCarriersQueryHandler(db *gorm.DB) GetAvailableCarriersQueryHandler {
	return GetAvailableCarriersQueryHandler{db: db}
}

// Handle executes the query, sorted by carrier name.
func (h GetAvailableCarriersQueryHandler) Handle(ctx context.Context, query GetAvailableCarriersQuery) ([]CarrierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			v.plate,
			v.kind,
			v.capacity_kg
		FROM carriers c
		JOIN vehicles v ON v.carrier_id = c.id
		WHERE c.available
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carriers := make([]CarrierResponse, 0)
	for rows.Next() {
		var response CarrierResponse
		if err := rows.Scan(
			&response.ID,
			&response.Name,
			&response.VehiclePlate,
			&response.VehicleKind,
			&response.CapacityKg,
		); err != nil {
			return nil, err
		}
		carriers = append(carriers, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return carriers, nil
}
