package queries

import (
	"context"

	"gorm.io/gorm"

	"shipping/internal/core/domain/model/shipment"
)

// GetShipmentsQueryHandler lists shipments straight from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment listing queries.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the query, newest shipments first.
func (h GetShipmentsQueryHandler) Handle(ctx context.Context, query GetShipmentsQuery) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			id,
			user_id,
			street,
			city,
			region,
			weight_kg,
			volume,
			product_type,
			status,
			created_at
		FROM shipments
	`

	tx := h.db.WithContext(ctx)
	var rows *gorm.DB
	if status, ok := query.Status(); ok {
		rows = tx.Raw(baseQuery+` WHERE status = ? ORDER BY created_at DESC`, int(status))
	} else {
		rows = tx.Raw(baseQuery + ` ORDER BY created_at DESC`)
	}

	return scanShipments(rows)
}

func scanShipments(tx *gorm.DB) ([]ShipmentResponse, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0)
	for rows.Next() {
		var response ShipmentResponse
		if err := rows.Scan(
			&response.ID,
			&response.UserID,
			&response.Street,
			&response.City,
			&response.Region,
			&response.WeightKg,
			&response.Volume,
			&response.ProductType,
			&response.Status,
			&response.CreatedAt,
		); err != nil {
			return nil, err
		}
		response.StatusName = shipment.Status(response.Status).Description()
		shipments = append(shipments, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return shipments, nil
}
