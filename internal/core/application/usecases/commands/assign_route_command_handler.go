package commands

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/carrier"
	"shipping/internal/core/domain/model/route"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

var (
	// ErrShipmentAlreadyAssigned is returned when the shipment already sits on a route.
	ErrShipmentAlreadyAssigned = errors.New("shipment is already assigned to a route")
	// ErrAssignmentConflict is returned when a concurrent request won the
	// assignment race; storage uniqueness detected the duplicate.
	ErrAssignmentConflict = errors.New("assignment conflicts with a concurrent assignment")
)

// AssignRouteResult carries the outcome of a successful allocation: the
// assignment plus the joined aggregates for the caller's response view.
type AssignRouteResult struct {
	Assignment *route.Assignment
	Shipment   *shipment.Shipment
	Route      *route.Route
	Carrier    *carrier.Carrier
}

// AssignRouteCommandHandler runs the allocation workflow: admission checks,
// assignment persistence and the shipment transition to InTransit, all in one
// transaction. The status change is broadcast only after commit.
//
// Checks run strictly in this order: shipment exists, shipment not yet
// assigned, route exists, carrier exists, carrier admits the shipment. The
// first failing check decides the error; nothing is persisted on failure.
type AssignRouteCommandHandler struct {
	uowFactory AssignUoWFactory
	publisher  ports.EventPublisher
}

// NewAssignRouteCommandHandler creates a handler for route allocation.
func NewAssignRouteCommandHandler(uowFactory AssignUoWFactory, publisher ports.EventPublisher) AssignRouteCommandHandler {
	return AssignRouteCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes one allocation request.
func (h AssignRouteCommandHandler) Handle(ctx context.Context, command AssignRouteCommand) (AssignRouteResult, error) {
	if err := command.Validate(); err != nil {
		return AssignRouteResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignRouteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, command.ShipmentID())
	if err != nil {
		return AssignRouteResult{}, err
	}

	_, err = assignmentRepo.GetByShipmentID(ctx, command.ShipmentID())
	if err == nil {
		return AssignRouteResult{}, ErrShipmentAlreadyAssigned
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return AssignRouteResult{}, err
	}

	routeAggregate, err := uow.RouteRepository().Get(ctx, command.RouteID())
	if err != nil {
		return AssignRouteResult{}, err
	}

	carrierAggregate, err := uow.CarrierRepository().Get(ctx, command.CarrierID())
	if err != nil {
		return AssignRouteResult{}, err
	}

	if err := services.NewAdmissionPolicy().Admit(aggregate, carrierAggregate); err != nil {
		return AssignRouteResult{}, err
	}

	assignment, err := route.NewAssignment(command.ShipmentID(), command.RouteID(), command.CarrierID())
	if err != nil {
		return AssignRouteResult{}, err
	}

	if err := assignmentRepo.Add(ctx, assignment); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return AssignRouteResult{}, ErrAssignmentConflict
		}
		return AssignRouteResult{}, err
	}

	entry, descriptor, err := aggregate.TransitionTo(shipment.InTransit, "")
	if err != nil {
		return AssignRouteResult{}, err
	}

	if err := shipmentRepo.Update(ctx, aggregate); err != nil {
		return AssignRouteResult{}, err
	}
	if err := shipmentRepo.AppendTransition(ctx, entry); err != nil {
		return AssignRouteResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return AssignRouteResult{}, err
	}

	h.publisher.PublishTransition(descriptor)

	return AssignRouteResult{
		Assignment: assignment,
		Shipment:   aggregate,
		Route:      routeAggregate,
		Carrier:    carrierAggregate,
	}, nil
}
