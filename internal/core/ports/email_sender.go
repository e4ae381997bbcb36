package ports

import (
	"context"
)

// EmailSender defines the contract for delivering outbound mail.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
