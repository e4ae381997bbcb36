// Package services provides domain services that coordinate business rules
// across multiple aggregates in the shipping system.
//
// The package includes:
//   - AdmissionPolicy: decides whether a carrier may accept a shipment
package services
