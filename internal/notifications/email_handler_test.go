package notifications

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shipping/internal/queue"
)

type emailSenderMock struct {
	mock.Mock
}

func (m *emailSenderMock) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func newTestHandler(sender *emailSenderMock) *EmailHandler {
	return NewEmailHandler(sender, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func Test_EmailHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should send confirmation for created shipment", func(t *testing.T) {
		sender := &emailSenderMock{}
		sender.On("Send", ctx, "laura@example.com", "Shipment #100 registered", mock.AnythingOfType("string")).
			Return(nil).Once()

		err := newTestHandler(sender).Handle(ctx, queue.Job{
			ID:   "job-1",
			Type: KindShipmentCreated,
			Payload: ShipmentCreatedPayload{
				ShipmentID:     100,
				RecipientEmail: "laura@example.com",
				RecipientName:  "Laura",
				ProductType:    "electronics",
				City:           "Bogotá",
			},
		})

		require.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("should send status change notification", func(t *testing.T) {
		sender := &emailSenderMock{}
		sender.On("Send", ctx, "laura@example.com", "Shipment #100 update", mock.AnythingOfType("string")).
			Return(nil).Once()

		err := newTestHandler(sender).Handle(ctx, queue.Job{
			ID:   "job-2",
			Type: KindShipmentStatusChanged,
			Payload: ShipmentStatusChangedPayload{
				ShipmentID:     100,
				RecipientEmail: "laura@example.com",
				RecipientName:  "Laura",
				NewStatus:      "In Transit",
			},
		})

		require.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("should propagate sender failure for retry", func(t *testing.T) {
		sender := &emailSenderMock{}
		sender.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp unreachable")).Once()

		err := newTestHandler(sender).Handle(ctx, queue.Job{
			Type:    KindShipmentCreated,
			Payload: ShipmentCreatedPayload{ShipmentID: 100, RecipientEmail: "laura@example.com"},
		})

		assert.Error(t, err)
	})

	t.Run("should reject unknown payload type", func(t *testing.T) {
		sender := &emailSenderMock{}

		err := newTestHandler(sender).Handle(ctx, queue.Job{Type: "mystery", Payload: nil})

		assert.Error(t, err)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
