package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrShipmentAlreadyIdentified is returned when storage attempts to assign
	// an identifier to a shipment that already carries one.
	ErrShipmentAlreadyIdentified = errors.New("shipment identifier is already assigned")
)

// Shipment represents a physical package tracked from intake to delivery.
// It is the aggregate root that owns the status lifecycle.
//
// Shipment follows these invariants:
//   - Weight and all three dimensions are strictly positive
//   - Volume equals length×width×height, computed exactly once at creation
//   - The creation timestamp is immutable once set
//   - Status changes only happen through TransitionTo
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	id          kernel.ID
	userID      kernel.ID
	address     Address
	weight      kernel.Weight
	dimensions  kernel.Dimensions
	productType string
	status      Status
	createdAt   time.Time

	isConstructed bool
}

// NewShipment creates a Shipment awaiting persistence. The identifier is
// assigned by storage afterwards via Identify. The shipment starts in Pending
// status with its creation timestamp set to now.
func NewShipment(
	userID kernel.ID,
	address Address,
	weight kernel.Weight,
	dimensions kernel.Dimensions,
	productType string,
) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setUserID(userID),
		s.setAddress(address),
		s.setWeight(weight),
		s.setDimensions(dimensions),
		s.setProductType(productType),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence. Unlike NewShipment
// it requires a valid identifier and accepts the stored status and timestamp.
func RestoreShipment(
	id kernel.ID,
	userID kernel.ID,
	address Address,
	weight kernel.Weight,
	dimensions kernel.Dimensions,
	productType string,
	status Status,
	createdAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(userID, address, weight, dimensions, productType)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	s.id = id
	s.status = status
	s.createdAt = createdAt
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// Identify assigns the storage-generated identifier to a freshly created
// shipment. It fails if the shipment already carries an identifier.
func (s *Shipment) Identify(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if s.id.Validate() == nil {
		return ErrShipmentAlreadyIdentified
	}
	s.id = id
	return nil
}

// ID returns the shipment's identifier. Zero until persisted.
func (s *Shipment) ID() kernel.ID { return s.id }

// UserID returns the identifier of the owning user.
func (s *Shipment) UserID() kernel.ID { return s.userID }

// Address returns the delivery destination.
func (s *Shipment) Address() Address { return s.address }

// Weight returns the shipment's weight.
func (s *Shipment) Weight() kernel.Weight { return s.weight }

// Dimensions returns the package dimensions with the derived volume.
func (s *Shipment) Dimensions() kernel.Dimensions { return s.dimensions }

// Volume returns the volume computed once at creation.
func (s *Shipment) Volume() float64 { return s.dimensions.Volume() }

// ProductType returns the declared product category.
func (s *Shipment) ProductType() string { return s.productType }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// CreatedAt returns the immutable creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// IsEqual compares two shipments by their identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// TransitionTo moves the shipment to the target status.
//
// The status machine rejects redundant transitions with ErrStatusUnchanged and
// backward moves with a validation error. On success the shipment's current
// status is updated and the method returns the history entry to append plus a
// TransitionDescriptor for the caller to forward to the event broadcaster.
// Persistence and broadcasting are the caller's responsibility; the aggregate
// stays purely transactional.
//
// When comment is empty a system description such as "Pending → InTransit"
// is recorded instead.
func (s *Shipment) TransitionTo(target Status, comment string) (*Transition, TransitionDescriptor, error) {
	previous := s.status

	newStatus, err := s.status.Change(target)
	if err != nil {
		return nil, TransitionDescriptor{}, err
	}

	if comment == "" {
		comment = fmt.Sprintf("%s → %s", previous.String(), newStatus.String())
	}

	occurredAt := time.Now().UTC()
	s.status = newStatus

	entry, err := NewTransition(s.id, newStatus, occurredAt, comment)
	if err != nil {
		return nil, TransitionDescriptor{}, err
	}

	descriptor := TransitionDescriptor{
		ShipmentID: s.id,
		UserID:     s.userID,
		Previous:   previous,
		New:        newStatus,
		OccurredAt: occurredAt,
		Message: fmt.Sprintf("Shipment status changed from %q to %q",
			previous.Description(), newStatus.Description()),
	}

	return entry, descriptor, nil
}

func (s *Shipment) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	s.userID = userID
	return nil
}

func (s *Shipment) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	s.address = address
	return nil
}

func (s *Shipment) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	s.dimensions = dimensions
	return nil
}

func (s *Shipment) setProductType(productType string) error {
	if productType == "" {
		return errs.NewValueIsRequiredError("productType")
	}
	s.productType = productType
	return nil
}
