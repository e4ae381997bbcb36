// Package route contains the Route entity and the Assignment that binds a
// shipment to a route and carrier. Routes are created in planned status and
// only planned routes accept new assignments.
package route
