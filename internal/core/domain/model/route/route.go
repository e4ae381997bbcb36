package route

import (
	"errors"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Route statuses.
const (
	StatusPlanned   = "planned"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

var (
	// ErrDescriptionIsRequired is returned when attempting to create a route without a description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrRouteIsNotConstructed is returned when using an improperly initialized Route.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
)

// Route is a planned delivery itinerary that shipments are assigned to.
type Route struct {
	id          kernel.ID
	description string
	startAt     time.Time
	status      string

	isConstructed bool
}

// NewRoute creates a planned route awaiting persistence. The identifier is
// assigned by storage afterwards via Identify.
func NewRoute(description string, startAt time.Time) (*Route, error) {
	r := &Route{
		status:        StatusPlanned,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setDescription(description),
		r.setStartAt(startAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a Route from persistence.
func RestoreRoute(id kernel.ID, description string, startAt time.Time, status string) (*Route, error) {
	r, err := NewRoute(description, startAt)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(id.Validate(), validateStatus(status)); err != nil {
		return nil, err
	}

	r.id = id
	r.status = status
	return r, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// Identify assigns the storage-generated identifier once.
func (r *Route) Identify(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if r.id.Validate() == nil {
		return errs.NewValueIsInvalidErrorWithCause("id", errors.New("route identifier is already assigned"))
	}
	r.id = id
	return nil
}

// ID returns the route identifier.
func (r *Route) ID() kernel.ID {
	return r.id
}

// Description returns the human-readable route description.
func (r *Route) Description() string {
	return r.description
}

// StartAt returns when the route is scheduled to begin.
func (r *Route) StartAt() time.Time {
	return r.startAt
}

// Status returns the route status.
func (r *Route) Status() string {
	return r.status
}

// IsPlanned reports whether the route still accepts assignments.
func (r *Route) IsPlanned() bool {
	return r.status == StatusPlanned
}

func (r *Route) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionIsRequired
	}
	r.description = description
	return nil
}

func (r *Route) setStartAt(startAt time.Time) error {
	if startAt.IsZero() {
		return errs.NewValueIsRequiredError("startAt")
	}
	r.startAt = startAt
	return nil
}

func validateStatus(status string) error {
	switch status {
	case StatusPlanned, StatusActive, StatusCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidError("status")
	}
}
