package kernel

import (
	"strconv"

	"shipping/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID holds the zero value and was not
// created through NewID or assigned by the persistence layer.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or assigned by storage")

// ID is a value object that represents the surrogate identifier of a domain
// entity. Identifiers are positive integers assigned by the persistence layer;
// the zero value is invalid and marks an entity that has not been persisted
// or an identifier that was never supplied.
//
// ID is immutable and safe for concurrent use.
//
// Example usage:
//
//	shipmentID, err := kernel.NewID(7)
//	if err != nil {
//	    // handle missing identifier
//	}
type ID struct {
	value int64
}

// NewID creates an ID from a raw integer. The value must be strictly positive.
func NewID(value int64) (ID, error) {
	id := ID{value: value}
	if err := id.Validate(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// Int64 returns the raw integer value of the identifier.
func (i ID) Int64() int64 {
	return i.value
}

// String returns the decimal representation of the identifier.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual compares two identifiers for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks that the identifier is present and positive.
// Returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
