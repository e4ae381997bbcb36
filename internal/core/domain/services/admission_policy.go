package services

import (
	"errors"

	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/shipment"
)

var (
	// ErrCarrierUnavailable is returned when the chosen carrier is not taking new shipments.
	ErrCarrierUnavailable = errors.New("carrier is not available")
	// ErrInsufficientCapacity is returned when the shipment weight exceeds the vehicle capacity.
	ErrInsufficientCapacity = errors.New("shipment weight exceeds vehicle capacity")
)

// AdmissionPolicy is a domain service that decides whether a carrier may
// accept a shipment.
//
// Business rules, checked in order:
//   - The carrier must be available
//   - The shipment weight must not exceed the vehicle capacity
//
// Volume is intentionally not part of admission: capacity is a weight limit.
type AdmissionPolicy struct{}

// NewAdmissionPolicy creates a new AdmissionPolicy instance.
func NewAdmissionPolicy() AdmissionPolicy {
	return AdmissionPolicy{}
}

// Admit reports whether the carrier may accept the shipment. It returns nil
// on admission, ErrCarrierUnavailable or ErrInsufficientCapacity on
// rejection, or a validation error when either aggregate is malformed.
func (p AdmissionPolicy) Admit(s *shipment.Shipment, c *carrier.Carrier) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if !c.IsAvailable() {
		return ErrCarrierUnavailable
	}
	if !c.CanCarry(s.Weight()) {
		return ErrInsufficientCapacity
	}

	return nil
}
