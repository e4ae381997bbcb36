package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetUserShipmentsQueryIsNotConstructed = errors.New(
	"GetUserShipmentsQuery must be created via NewGetUserShipmentsQuery constructor",
)

// GetUserShipmentsQuery retrieves the shipments owned by one user.
type GetUserShipmentsQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetUserShipmentsQuery creates a query for one user's shipments.
func NewGetUserShipmentsQuery(userID int64) (GetUserShipmentsQuery, error) {
	id, err := kernel.NewID(userID)
	if err != nil {
		return GetUserShipmentsQuery{}, err
	}

	return GetUserShipmentsQuery{
		userID: id,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserShipmentsQueryIsNotConstructed)
}

// UserID returns the shipment owner.
func (q GetUserShipmentsQuery) UserID() kernel.ID {
	return q.userID
}

// GetUserShipmentsQueryHandler lists one user's shipments from the database.
type GetUserShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserShipmentsQueryHandler creates a handler for user shipment queries.
func NewGetUserShipmentsQueryHandler(db *gorm.DB) GetUserShipmentsQueryHandler {
	return GetUserShipmentsQueryHandler{db: db}
}

// Handle executes the query, newest shipments first.
func (h GetUserShipmentsQueryHandler) Handle(ctx context.Context, query GetUserShipmentsQuery) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows := h.db.WithContext(ctx).Raw(`
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
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Int64())

	return scanShipments(rows)
}
