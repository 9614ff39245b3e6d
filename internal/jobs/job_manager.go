package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	backlogJob *PreparationBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
// An empty backlogSchedule leaves the backlog report disabled.
func NewJobManager(
	pendingHandler queries.GetPendingPreparationsQueryHandler,
	backlogSchedule string,
	clock kernel.Clock,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if backlogSchedule != "" {
		jm.backlogJob = NewPreparationBacklogJob(pendingHandler, backlogSchedule, clock, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.backlogJob != nil {
		if err := jm.backlogJob.Start(); err != nil {
			return fmt.Errorf("failed to start preparation backlog job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.backlogJob != nil {
		jm.backlogJob.Stop()
	}
}
