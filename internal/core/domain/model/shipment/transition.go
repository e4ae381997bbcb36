package shipment

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Transition is one append-only history entry in a shipment's audit trail.
// Entries are never mutated or deleted; their timestamps are monotonically
// non-decreasing per shipment, and the shipment's current status always
// equals the status of its most recent entry.
type Transition struct {
	id         kernel.ID
	shipmentID kernel.ID
	status     Status
	occurredAt time.Time
	comment    string
}

// NewTransition creates a history entry for the given shipment and status.
// The entry identifier is assigned by storage afterwards via Identify.
func NewTransition(shipmentID kernel.ID, status Status, occurredAt time.Time, comment string) (*Transition, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if occurredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("occurredAt")
	}

	return &Transition{
		shipmentID: shipmentID,
		status:     status,
		occurredAt: occurredAt,
		comment:    comment,
	}, nil
}

// RestoreTransition reconstructs a history entry from persistence.
func RestoreTransition(id, shipmentID kernel.ID, status Status, occurredAt time.Time, comment string) (*Transition, error) {
	t, err := NewTransition(shipmentID, status, occurredAt, comment)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	t.id = id
	return t, nil
}

// Identify assigns the storage-generated identifier to the entry.
func (t *Transition) Identify(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

// ID returns the entry identifier. Zero until persisted.
func (t *Transition) ID() kernel.ID { return t.id }

// ShipmentID returns the shipment this entry belongs to.
func (t *Transition) ShipmentID() kernel.ID { return t.shipmentID }

// Status returns the target status recorded by this entry.
func (t *Transition) Status() Status { return t.status }

// OccurredAt returns when the transition happened.
func (t *Transition) OccurredAt() time.Time { return t.occurredAt }

// Comment returns the free-text or system-generated description.
func (t *Transition) Comment() string { return t.comment }

// TransitionDescriptor is the (previous, new, timestamp) triple describing
// one status change. The status machine hands it to the caller, which
// forwards it to the event broadcaster.
type TransitionDescriptor struct {
	ShipmentID kernel.ID
	UserID     kernel.ID
	Previous   Status
	New        Status
	OccurredAt time.Time
	Message    string
}
