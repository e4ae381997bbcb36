package ports

import (
	"shipping/internal/queue"
)

// JobEnqueuer defines the contract for scheduling background work on a named
// queue. Jobs run asynchronously with at-least-once semantics and bounded
// retries, so payload handlers must tolerate repeated delivery.
type JobEnqueuer interface {
	// Enqueue appends a job carrying the payload to the named queue and
	// returns the job identifier. It never blocks and never fails. A
	// maxAttempts of zero or less selects the dispatcher default.
	Enqueue(queueName string, payload queue.Payload, maxAttempts int) string
}
