package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"shipping/internal/pkg/errs"
)

// Dispatcher is an in-memory, multi-queue, at-least-once job engine.
// Producers enqueue jobs at any time; a periodic drain cycle hands runnable
// jobs to the queue handler strictly in FIFO order. Queues drain
// independently of each other, but a single queue never drains twice
// concurrently.
//
// The dispatcher is explicit state: construct one instance at process start
// and pass it to every producer and to the drain scheduler.
type Dispatcher struct {
	mu     sync.Mutex
	queues map[string]*taskQueue
	logger *slog.Logger
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		queues: make(map[string]*taskQueue),
		logger: logger.With("component", "queue.Dispatcher"),
	}
}

// Enqueue appends a job carrying the payload to the named queue, creating the
// queue on first use. It never blocks and never fails; backpressure is
// unbounded. A maxAttempts of zero or less selects DefaultMaxAttempts.
// The returned identifier can be used to correlate log lines; producers have
// no further visibility beyond Status.
func (d *Dispatcher) Enqueue(queueName string, payload Payload, maxAttempts int) string {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	job := &Job{
		ID:          uuid.NewString(),
		Queue:       queueName,
		Type:        payload.Kind(),
		Payload:     payload,
		MaxAttempts: maxAttempts,
		CreatedAt:   time.Now().UTC(),
	}

	q := d.queue(queueName)
	q.append(job)

	d.logger.Debug("job enqueued",
		"queue", queueName,
		"jobId", job.ID,
		"jobType", job.Type)
	return job.ID
}

// RegisterHandler binds the handler that processes jobs of the named queue.
// Each queue has exactly one handler; jobs on a queue without one stay
// pending indefinitely.
func (d *Dispatcher) RegisterHandler(queueName string, handler Handler) {
	d.queue(queueName).setHandler(handler)
}

// Status reports the pending, failed and processed job counts of the named
// queue. It returns errs.ErrObjectNotFound (wrapped) for unknown queues.
func (d *Dispatcher) Status(queueName string) (Status, error) {
	d.mu.Lock()
	q, ok := d.queues[queueName]
	d.mu.Unlock()
	if !ok {
		return Status{}, errs.NewObjectNotFoundError("queueName", queueName)
	}
	return q.status(), nil
}

// DrainOnce runs a single drain cycle: every queue with runnable jobs is
// drained, each on its own goroutine. Queues already draining from a previous
// cycle are skipped. DrainOnce returns once all queues drained in this cycle
// are exhausted.
func (d *Dispatcher) DrainOnce(ctx context.Context) {
	d.mu.Lock()
	queues := make([]*taskQueue, 0, len(d.queues))
	for _, q := range d.queues {
		queues = append(queues, q)
	}
	d.mu.Unlock()

	var wg sync.WaitGroup
	for _, q := range queues {
		wg.Add(1)
		go func(q *taskQueue) {
			defer wg.Done()
			q.drain(ctx, d.logger)
		}(q)
	}
	wg.Wait()
}

// queue returns the named queue, creating it on first use.
func (d *Dispatcher) queue(queueName string) *taskQueue {
	d.mu.Lock()
	defer d.mu.Unlock()

	q, ok := d.queues[queueName]
	if !ok {
		q = &taskQueue{name: queueName}
		d.queues[queueName] = q
	}
	return q
}

// taskQueue holds the jobs of one named queue in arrival order. Jobs are
// never removed; completed jobs stay for status inspection.
type taskQueue struct {
	mu       sync.Mutex
	name     string
	jobs     []*Job
	handler  Handler
	draining bool
}

func (q *taskQueue) append(job *Job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
}

func (q *taskQueue) setHandler(handler Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handler = handler
}

func (q *taskQueue) status() Status {
	q.mu.Lock()
	defer q.mu.Unlock()

	var s Status
	for _, job := range q.jobs {
		switch {
		case job.IsPending():
			s.Pending++
		case job.IsFailed():
			s.Failed++
		default:
			s.Processed++
		}
	}
	return s
}

// drain attempts every job runnable at cycle start exactly once, in FIFO
// order. A job that fails with attempts remaining is picked up again on a
// later cycle. The draining flag guarantees at most one drain per queue at
// any time.
func (q *taskQueue) drain(ctx context.Context, logger *slog.Logger) {
	runnable, ok := q.beginDrain()
	if !ok {
		return
	}
	defer q.endDrain()

	for _, job := range runnable {
		q.process(ctx, job, logger)
	}
}

// beginDrain marks the queue draining and snapshots the runnable jobs.
// It reports false when the queue is already draining, has no handler, or
// has nothing to run.
func (q *taskQueue) beginDrain() ([]*Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.draining || q.handler == nil {
		return nil, false
	}

	var runnable []*Job
	for _, job := range q.jobs {
		if job.IsPending() {
			runnable = append(runnable, job)
		}
	}
	if len(runnable) == 0 {
		return nil, false
	}

	q.draining = true
	return runnable, true
}

func (q *taskQueue) endDrain() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.draining = false
}

// process runs the handler for one job and records the outcome. The handler
// call happens outside the queue lock so producers never block on slow jobs.
func (q *taskQueue) process(ctx context.Context, job *Job, logger *slog.Logger) {
	q.mu.Lock()
	job.Attempts++
	snapshot := *job
	handler := q.handler
	q.mu.Unlock()

	err := handler.Handle(ctx, snapshot)

	q.mu.Lock()
	defer q.mu.Unlock()

	if err != nil {
		job.Err = err.Error()
		if job.Attempts >= job.MaxAttempts {
			job.ProcessedAt = time.Now().UTC()
			logger.Error("job failed permanently",
				"queue", q.name,
				"jobId", job.ID,
				"jobType", job.Type,
				"attempts", job.Attempts,
				"error", err)
			return
		}
		logger.Warn("job failed, will retry",
			"queue", q.name,
			"jobId", job.ID,
			"jobType", job.Type,
			"attempts", job.Attempts,
			"error", err)
		return
	}

	job.ProcessedAt = time.Now().UTC()
	logger.Info("job processed",
		"queue", q.name,
		"jobId", job.ID,
		"jobType", job.Type,
		"attempts", job.Attempts)
}
