// Package carrier contains the Carrier aggregate and its Vehicle entity.
//
// A carrier is a transport operator that routes are assigned to. Its vehicle
// defines the weight capacity that bounds which shipments the carrier may
// accept, and the availability flag gates new assignments.
package carrier
