package queries

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"shipping/internal/pkg/guard"
)

var ErrGetPlannedRoutesQueryIsNotConstructed = errors.New(
	"GetPlannedRoutesQuery must be created via NewGetPlannedRoutesQuery constructor",
)

// GetPlannedRoutesQuery retrieves routes still accepting assignments.
type GetPlannedRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlannedRoutesQuery creates a query for planned routes.
func NewGetPlannedRoutesQuery() GetPlannedRoutesQuery {
	return GetPlannedRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPlannedRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetPlannedRoutesQueryIsNotConstructed)
}

// RouteResponse is the route read model.
type RouteResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	StartAt     time.Time `json:"start_at"`
	Status      string    `json:"status"`
}

// GetPlannedRoutesQueryHandler reads planned routes from the database.
type GetPlannedRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetPlannedRoutesQueryHandler creates a handler for route queries.
func NewGetPlannedRoutesQueryHandler(db *gorm.DB) GetPlannedRoutesQueryHandler {
	return GetPlannedRoutesQueryHandler{db: db}
}

// Handle executes the query, earliest departure first.
func (h GetPlannedRoutesQueryHandler) Handle(ctx context.Context, query GetPlannedRoutesQuery) ([]RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description,
			start_at,
			status
		FROM routes
		WHERE status = 'planned'
		ORDER BY start_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]RouteResponse, 0)
	for rows.Next() {
		var response RouteResponse
		if err := rows.Scan(
			&response.ID,
			&response.Description,
			&response.StartAt,
			&response.Status,
		); err != nil {
			return nil, err
		}
		routes = append(routes, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return routes, nil
}
