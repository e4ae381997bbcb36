// Package email provides the outbound adapter for the EmailSender port.
package email

import (
	"context"
	"log/slog"
)

// LogEmailSender writes outgoing messages to the structured log instead of
// handing them to a mail provider. It stands in for a real provider adapter
// in environments without delivery credentials.
type LogEmailSender struct {
	logger *slog.Logger
}

// NewLogEmailSender creates a sender that records messages via slog.
func NewLogEmailSender(logger *slog.Logger) *LogEmailSender {
	return &LogEmailSender{logger: logger.With("component", "email.LogEmailSender")}
}

// Send logs the message instead of delivering it.
func (s *LogEmailSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.InfoContext(ctx, "Email sent",
		"to", to,
		"subject", subject,
		"body_length", len(body),
	)
	return nil
}
