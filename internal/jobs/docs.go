// Package jobs provides scheduled background tasks for the kitchen.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PreparationBacklogJob - reports how many orders are still being prepared and which
// one has waited longest since its last station update.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pendingHandler, jobs.DefaultBacklogSchedule, clock, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field, so "*/30 * * * * *"
// runs twice a minute. An empty schedule disables the job.
package jobs
