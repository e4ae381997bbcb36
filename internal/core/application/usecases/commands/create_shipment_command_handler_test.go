package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/notifications"
	"shipping/internal/pkg/errs"
)

func validCreateShipmentCommand(t *testing.T) commands.CreateShipmentCommand {
	t.Helper()

	cmd, err := commands.NewCreateShipmentCommand(
		7,
		"Calle 85 #11-42", "", "Bogotá", "Cundinamarca", "110221", "",
		2.5, 30, 20, 15, "electronics",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateShipmentCommand_Validation(t *testing.T) {
	t.Run("should reject missing user id", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand(
			0, "Calle 85 #11-42", "", "Bogotá", "Cundinamarca", "", "",
			2.5, 30, 20, 15, "electronics",
		)

		require.Error(t, err)
	})

	t.Run("should join multiple violations", func(t *testing.T) {
		_, err := commands.NewCreateShipmentCommand(
			7, "", "", "", "", "", "",
			0, 30, 0, 15, "",
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, commands.ErrProductTypeIsRequired)
	})

	t.Run("should reject non-constructed command", func(t *testing.T) {
		handler := commands.NewCreateShipmentCommandHandler(new(MockShipmentUoWFactory), &recordingEnqueuer{})

		_, err := handler.Handle(t.Context(), commands.CreateShipmentCommand{})

		require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
	})
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateShipmentCommand(t)

	shipmentRepo := new(MockShipmentRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, mustID(t, 7)).Return(restoredUser(t, 7), nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) {
				aggregate := args.Get(1).(*shipment.Shipment)
				require.NoError(t, aggregate.Identify(mustID(t, 100)))
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	enqueuer := &recordingEnqueuer{}
	handler := commands.NewCreateShipmentCommandHandler(factory, enqueuer)
	aggregate, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.Pending, aggregate.Status())
	assert.Equal(t, 9000.0, aggregate.Volume())

	require.Len(t, enqueuer.payloads, 1)
	payload, ok := enqueuer.payloads[0].(notifications.ShipmentCreatedPayload)
	require.True(t, ok)
	assert.Equal(t, int64(100), payload.ShipmentID)
	assert.Equal(t, "laura@example.com", payload.RecipientEmail)
	assert.Equal(t, "Bogotá", payload.City)

	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_UnknownUser(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateShipmentCommand(t)

	userRepo := new(MockUserRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, mustID(t, 7)).
			Return(nil, errs.NewObjectNotFoundError("userID", int64(7))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	enqueuer := &recordingEnqueuer{}
	handler := commands.NewCreateShipmentCommandHandler(factory, enqueuer)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, enqueuer.payloads)
}

func TestCreateShipmentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateShipmentCommand(t)

	shipmentRepo := new(MockShipmentRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, mustID(t, 7)).Return(restoredUser(t, 7), nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	enqueuer := &recordingEnqueuer{}
	handler := commands.NewCreateShipmentCommandHandler(factory, enqueuer)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, enqueuer.payloads, "no email may be scheduled when the transaction fails")
}
