package jobs

import (
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	backlogReportJob *OrderBacklogReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	backlogHandler queries.GetOrderBacklogQueryHandler,
	backlogSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		backlogReportJob: NewOrderBacklogReportJob(backlogHandler, backlogSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.backlogReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start order backlog report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.backlogReportJob.Stop()
}
