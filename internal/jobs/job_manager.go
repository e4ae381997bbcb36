package jobs

import (
	"fmt"
	"log/slog"

	"shipping/internal/queue"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	queueDrainJob *QueueDrainJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(dispatcher *queue.Dispatcher, logger *slog.Logger) *JobManager {
	return &JobManager{
		queueDrainJob: NewQueueDrainJob(dispatcher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.queueDrainJob.Start(); err != nil {
		return fmt.Errorf("failed to start queue drain job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.queueDrainJob.Stop()
}
