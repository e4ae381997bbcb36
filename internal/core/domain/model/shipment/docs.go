// Package shipment provides domain entities and business logic for shipment
// tracking in the shipping system. It implements the Shipment aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Shipment: The aggregate root that owns identity, package properties, and lifecycle
//   - Status: A state machine that enforces valid shipment status transitions
//   - Transition: An append-only history entry in the shipment's audit trail
//   - Address: The delivery destination captured at creation time
//
// Key business rules:
//   - Shipments must have a positive weight and positive dimensions
//   - Volume is derived from the dimensions exactly once, at creation
//   - Shipment status moves forward only: Pending -> InTransit -> Delivered
//   - Redundant transitions are rejected so the audit trail stays meaningful
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
