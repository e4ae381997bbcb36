package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/notifications"
	"shipping/internal/pkg/errs"
)

func TestUpdateShipmentStatusCommand_Validation(t *testing.T) {
	t.Run("should reject unknown target status", func(t *testing.T) {
		_, err := commands.NewUpdateShipmentStatusCommand(100, 9, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject missing shipment id", func(t *testing.T) {
		_, err := commands.NewUpdateShipmentStatusCommand(0, int(shipment.Delivered), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUpdateShipmentStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateShipmentStatusCommand(100, int(shipment.Delivered), "left at reception")
	require.NoError(t, err)

	aggregate := restoredShipment(t, 100, shipment.InTransit)

	shipmentRepo := new(MockShipmentRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, mustID(t, 100)).Return(aggregate, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, mustID(t, 7)).Return(restoredUser(t, 7), nil).Once(),
		shipmentRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		shipmentRepo.On("AppendTransition", ctx, mock.MatchedBy(func(entry *shipment.Transition) bool {
			return entry.Status() == shipment.Delivered && entry.Comment() == "left at reception"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	publisher.On("PublishTransition", mock.MatchedBy(func(d shipment.TransitionDescriptor) bool {
		return d.Previous == shipment.InTransit && d.New == shipment.Delivered
	})).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	enqueuer := &recordingEnqueuer{}
	handler := commands.NewUpdateShipmentStatusCommandHandler(factory, publisher, enqueuer)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, updated.Status())

	require.Len(t, enqueuer.payloads, 1)
	payload, ok := enqueuer.payloads[0].(notifications.ShipmentStatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, "Delivered", payload.NewStatus)

	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle_NoOp(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateShipmentStatusCommand(100, int(shipment.InTransit), "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, mustID(t, 100)).
			Return(restoredShipment(t, 100, shipment.InTransit), nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, mustID(t, 7)).Return(restoredUser(t, 7), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	enqueuer := &recordingEnqueuer{}
	handler := commands.NewUpdateShipmentStatusCommandHandler(factory, publisher, enqueuer)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, shipment.ErrStatusUnchanged)
	assert.Empty(t, enqueuer.payloads)
	publisher.AssertNotCalled(t, "PublishTransition", mock.Anything)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateShipmentStatusCommandHandler_Handle_BackwardMove(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateShipmentStatusCommand(100, int(shipment.Pending), "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, mustID(t, 100)).
			Return(restoredShipment(t, 100, shipment.Delivered), nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, mustID(t, 7)).Return(restoredUser(t, 7), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentStatusCommandHandler(factory, new(MockEventPublisher), &recordingEnqueuer{})
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.NotErrorIs(t, err, shipment.ErrStatusUnchanged)
}

func TestUpdateShipmentStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateShipmentStatusCommand(100, int(shipment.Delivered), "")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, mustID(t, 100)).
			Return(nil, errs.NewObjectNotFoundError("shipmentID", int64(100))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateShipmentStatusCommandHandler(factory, new(MockEventPublisher), &recordingEnqueuer{})
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
