package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/queue"

	"github.com/robfig/cron/v3"
)

// QueueDrainJob runs the dispatcher's drain cycle on a fixed schedule.
// Runs every second so enqueued work is picked up with minimal delay.
type QueueDrainJob struct {
	dispatcher *queue.Dispatcher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewQueueDrainJob creates a job that drains all dispatcher queues every second.
func NewQueueDrainJob(dispatcher *queue.Dispatcher, logger *slog.Logger) *QueueDrainJob {
	return &QueueDrainJob{
		dispatcher: dispatcher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "queue_drain_job"),
	}
}

// Start begins the drain job. Each tick runs one full drain cycle; queues
// still draining from a previous tick are skipped by the dispatcher itself.
func (j *QueueDrainJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.dispatcher.DrainOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue drain job started (running every second)")
	return nil
}

// Stop stops the drain job.
func (j *QueueDrainJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue drain job stopped")
}
