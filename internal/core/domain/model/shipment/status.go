package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// ErrStatusUnchanged is returned when a transition targets the status the
// shipment already has. Redundant transitions are rejected, not silently
// accepted, so the history log never records a no-op entry.
var ErrStatusUnchanged = errs.NewValueIsInvalidErrorWithCause(
	"status",
	fmt.Errorf("shipment already has this status"),
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered
//	   └──────────────────────────┘
//	     (forward jumps allowed)
//
// Delivered is terminal: no transition leads out of it. Backward moves are
// rejected; the machine deliberately allows skipping InTransit because the
// fleet may hand a package straight to a local recipient.
type Status int

const (
	// Pending is the initial status when a shipment is first created.
	// Shipments in this status are waiting to be assigned to a route.
	Pending Status = iota

	// InTransit indicates the shipment has been assigned and is moving.
	InTransit

	// Delivered indicates the shipment reached its recipient.
	// This is a final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is one of the closed enumeration.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Description returns the customer-facing wording for the status.
func (s Status) Description() string {
	switch s {
	case Pending:
		return "Pending"
	case InTransit:
		return "In Transit"
	case Delivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

// Change validates a transition from the current status to target and returns
// the new status on success.
//
// Rules:
//   - target must be a valid status value
//   - target equal to the current status fails with ErrStatusUnchanged
//   - backward moves are rejected; Delivered is therefore terminal
//   - forward jumps (Pending -> Delivered) are allowed
//
// Returns:
//   - (target, nil) on a legal transition
//   - (0, error) otherwise
func (s Status) Change(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target == s {
		return 0, ErrStatusUnchanged
	}

	if target < s {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot move back from %s to %s", s.String(), target.String()))
	}

	return target, nil
}
