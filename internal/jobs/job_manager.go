package jobs

import (
	"fmt"
	"log/slog"

	"salesreport/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	weeklyReportJob *WeeklyReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	sendWeeklyReportHandler commands.SendWeeklyReportCommandHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		weeklyReportJob: NewWeeklyReportJob(sendWeeklyReportHandler, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.weeklyReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start weekly report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.weeklyReportJob.Stop()
}
