package queue

import (
	"context"
	"time"
)

// DefaultMaxAttempts bounds retries for jobs enqueued without an explicit limit.
const DefaultMaxAttempts = 3

// Payload is the discriminated union of job payloads. The dispatcher never
// inspects payloads beyond the kind tag; handlers switch on the concrete type.
type Payload interface {
	// Kind returns the job-type tag stored on the job.
	Kind() string
}

// Handler processes jobs of a single queue. Execution is at-least-once:
// a handler may see the same job again after a failure.
type Handler interface {
	Handle(ctx context.Context, job Job) error
}

// Job is a unit of deferred work on a named queue. Jobs are mutated only by
// the drain loop and retained in memory until process exit.
type Job struct {
	ID          string
	Queue       string
	Type        string
	Payload     Payload
	Attempts    int
	MaxAttempts int
	CreatedAt   time.Time
	// ProcessedAt is zero until the job completes, either successfully or
	// by exhausting its attempts.
	ProcessedAt time.Time
	// Err holds the text of the last handler failure.
	Err string
}

// IsPending reports whether the job still awaits a successful run.
func (j Job) IsPending() bool {
	return j.ProcessedAt.IsZero() && j.Attempts < j.MaxAttempts
}

// IsFailed reports whether the job exhausted its attempts without success.
func (j Job) IsFailed() bool {
	return !j.ProcessedAt.IsZero() && j.Attempts >= j.MaxAttempts
}

// IsProcessed reports whether the job completed successfully.
func (j Job) IsProcessed() bool {
	return !j.ProcessedAt.IsZero() && j.Attempts < j.MaxAttempts
}

// Status aggregates the job counts of one queue.
type Status struct {
	Pending   int `json:"pending"`
	Failed    int `json:"failed"`
	Processed int `json:"processed"`
}
