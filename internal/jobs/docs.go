// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. QueueDrainJob - Runs every second to drain the in-process job dispatcher queues
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatcher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The drain job uses the cron expression "* * * * * *", meaning it runs every
// second. Each tick triggers one drain cycle; the dispatcher skips queues
// that are still draining from a previous tick, so overlapping ticks are safe.
package jobs
