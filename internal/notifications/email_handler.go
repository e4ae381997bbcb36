package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"shipping/internal/core/ports"
	"shipping/internal/queue"
)

// EmailHandler turns notification jobs into outbound mail. It is registered
// on the emails queue; delivery failures bubble up so the dispatcher retries.
type EmailHandler struct {
	sender ports.EmailSender
	logger *slog.Logger
}

// NewEmailHandler creates an EmailHandler backed by the given sender.
func NewEmailHandler(sender ports.EmailSender, logger *slog.Logger) *EmailHandler {
	return &EmailHandler{
		sender: sender,
		logger: logger.With("component", "notifications.EmailHandler"),
	}
}

// Handle renders and sends the email for one job.
func (h *EmailHandler) Handle(ctx context.Context, job queue.Job) error {
	switch payload := job.Payload.(type) {
	case ShipmentCreatedPayload:
		subject := fmt.Sprintf("Shipment #%d registered", payload.ShipmentID)
		body := fmt.Sprintf(
			"Hello %s,\n\nYour shipment #%d (%s) to %s has been registered and is pending dispatch.\n",
			payload.RecipientName, payload.ShipmentID, payload.ProductType, payload.City)
		return h.sender.Send(ctx, payload.RecipientEmail, subject, body)

	case ShipmentStatusChangedPayload:
		subject := fmt.Sprintf("Shipment #%d update", payload.ShipmentID)
		body := fmt.Sprintf(
			"Hello %s,\n\nYour shipment #%d is now %s.\n",
			payload.RecipientName, payload.ShipmentID, payload.NewStatus)
		return h.sender.Send(ctx, payload.RecipientEmail, subject, body)

	default:
		h.logger.Error("unknown payload type", "jobId", job.ID, "jobType", job.Type)
		return fmt.Errorf("unknown payload type %q", job.Type)
	}
}
