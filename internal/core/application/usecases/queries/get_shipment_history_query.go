package queries

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentHistoryQueryIsNotConstructed = errors.New(
	"GetShipmentHistoryQuery must be created via NewGetShipmentHistoryQuery constructor",
)

// GetShipmentHistoryQuery retrieves the status history of one shipment,
// oldest entry first.
type GetShipmentHistoryQuery struct {
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetShipmentHistoryQuery creates a query for a shipment's history.
func NewGetShipmentHistoryQuery(shipmentID int64) (GetShipmentHistoryQuery, error) {
	id, err := kernel.NewID(shipmentID)
	if err != nil {
		return GetShipmentHistoryQuery{}, err
	}

	return GetShipmentHistoryQuery{
		shipmentID: id,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentHistoryQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose history is requested.
func (q GetShipmentHistoryQuery) ShipmentID() kernel.ID {
	return q.shipmentID
}

// TransitionResponse is one entry of a shipment's status history.
type TransitionResponse struct {
	ID         int64     `json:"id"`
	ShipmentID int64     `json:"shipment_id"`
	Status     int       `json:"status"`
	StatusName string    `json:"status_name"`
	OccurredAt time.Time `json:"occurred_at"`
	Comment    string    `json:"comment"`
}

// GetShipmentHistoryQueryHandler reads a shipment's history from the database.
type GetShipmentHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentHistoryQueryHandler creates a handler for history queries.
func NewGetShipmentHistoryQueryHandler(db *gorm.DB) GetShipmentHistoryQueryHandler {
	return GetShipmentHistoryQueryHandler{db: db}
}

// Handle executes the query. It returns errs.ErrObjectNotFound when the
// shipment itself does not exist, distinguishing that from an empty history.
func (h GetShipmentHistoryQueryHandler) Handle(ctx context.Context, query GetShipmentHistoryQuery) ([]TransitionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	if err := h.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM shipments WHERE id = ?)`, query.ShipmentID().Int64()).
		Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID().Int64())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_id,
			status,
			occurred_at,
			comment
		FROM shipment_transitions
		WHERE shipment_id = ?
		ORDER BY occurred_at, id
	`, query.ShipmentID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]TransitionResponse, 0)
	for rows.Next() {
		var response TransitionResponse
		if err := rows.Scan(
			&response.ID,
			&response.ShipmentID,
			&response.Status,
			&response.OccurredAt,
			&response.Comment,
		); err != nil {
			return nil, err
		}
		response.StatusName = shipment.Status(response.Status).Description()
		history = append(history, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}
