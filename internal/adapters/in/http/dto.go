package http

import (
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/user"
)

// Request bodies.

type registerUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createShipmentRequest struct {
	Street      string  `json:"street"`
	Detail      string  `json:"detail,omitempty"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	PostalCode  string  `json:"postal_code,omitempty"`
	Country     string  `json:"country,omitempty"`
	WeightKg    float64 `json:"weight_kg"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	ProductType string  `json:"product_type"`
}

type updateStatusRequest struct {
	Status  int    `json:"status"`
	Comment string `json:"comment,omitempty"`
}

type createAssignmentRequest struct {
	ShipmentID int64 `json:"shipment_id"`
	RouteID    int64 `json:"route_id"`
	CarrierID  int64 `json:"carrier_id"`
}

// Response bodies.

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type shipmentResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Street      string    `json:"street"`
	Detail      string    `json:"detail,omitempty"`
	City        string    `json:"city"`
	Region      string    `json:"region"`
	PostalCode  string    `json:"postal_code,omitempty"`
	Country     string    `json:"country"`
	WeightKg    float64   `json:"weight_kg"`
	Volume      float64   `json:"volume"`
	ProductType string    `json:"product_type"`
	Status      int       `json:"status"`
	StatusName  string    `json:"status_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type routeSummary struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	StartAt     time.Time `json:"start_at"`
	Status      string    `json:"status"`
}

type carrierSummary struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	VehiclePlate string  `json:"vehicle_plate"`
	VehicleKind  string  `json:"vehicle_kind"`
	CapacityKg   float64 `json:"capacity_kg"`
}

type assignmentResponse struct {
	ID         int64            `json:"id"`
	ShipmentID int64            `json:"shipment_id"`
	RouteID    int64            `json:"route_id"`
	CarrierID  int64            `json:"carrier_id"`
	AssignedAt time.Time        `json:"assigned_at"`
	Shipment   shipmentResponse `json:"shipment"`
	Route      routeSummary     `json:"route"`
	Carrier    carrierSummary   `json:"carrier"`
}

func toUserResponse(account *user.User) userResponse {
	return userResponse{
		ID:    account.ID().Int64(),
		Name:  account.Name(),
		Email: account.Email(),
		Role:  account.Role(),
	}
}

func toShipmentResponse(aggregate *shipment.Shipment) shipmentResponse {
	addr := aggregate.Address()

	return shipmentResponse{
		ID:          aggregate.ID().Int64(),
		UserID:      aggregate.UserID().Int64(),
		Street:      addr.Street(),
		Detail:      addr.Detail(),
		City:        addr.City(),
		Region:      addr.Region(),
		PostalCode:  addr.PostalCode(),
		Country:     addr.Country(),
		WeightKg:    aggregate.Weight().Kilograms(),
		Volume:      aggregate.Volume(),
		ProductType: aggregate.ProductType(),
		Status:      int(aggregate.Status()),
		StatusName:  aggregate.Status().Description(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toAssignmentResponse(result commands.AssignRouteResult) assignmentResponse {
	assignment := result.Assignment
	vehicle := result.Carrier.Vehicle()

	return assignmentResponse{
		ID:         assignment.ID().Int64(),
		ShipmentID: assignment.ShipmentID().Int64(),
		RouteID:    assignment.RouteID().Int64(),
		CarrierID:  assignment.CarrierID().Int64(),
		AssignedAt: assignment.AssignedAt(),
		Shipment:   toShipmentResponse(result.Shipment),
		Route: routeSummary{
			ID:          result.Route.ID().Int64(),
			Description: result.Route.Description(),
			StartAt:     result.Route.StartAt(),
			Status:      result.Route.Status(),
		},
		Carrier: carrierSummary{
			ID:           result.Carrier.ID().Int64(),
			Name:         result.Carrier.Name(),
			VehiclePlate: vehicle.Plate(),
			VehicleKind:  vehicle.Kind(),
			CapacityKg:   vehicle.CapacityKg(),
		},
	}
}
