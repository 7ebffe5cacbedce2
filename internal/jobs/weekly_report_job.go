package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"salesreport/internal/core/application/usecases/commands"
	"salesreport/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule runs the report every Monday at 08:00.
const DefaultSchedule = "0 8 * * 1"

// WeeklyReportJob manages the scheduled run of the reporting pipeline.
// Each tick aggregates the trailing seven days ending at the tick moment.
type WeeklyReportJob struct {
	handler  commands.SendWeeklyReportCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewWeeklyReportJob creates the report job on the given cron schedule.
// An empty schedule falls back to DefaultSchedule.
func NewWeeklyReportJob(
	handler commands.SendWeeklyReportCommandHandler,
	schedule string,
	logger *slog.Logger,
) *WeeklyReportJob {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	return &WeeklyReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "weekly_report_job"),
	}
}

// Start begins the scheduled report runs.
func (j *WeeklyReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Weekly report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduled report runs.
func (j *WeeklyReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Weekly report job stopped")
}

func (j *WeeklyReportJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewSendWeeklyReportCommand(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Weekly report run could not be constructed", "error", err)
		return
	}

	outcome, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		// An aborted dispatch needs operator attention: some recipients may
		// already have received the report while later ones were skipped.
		if errors.Is(err, services.ErrDeliveryFailed) {
			j.logger.ErrorContext(ctx, "Weekly report run aborted mid-dispatch", "error", err)
			return
		}
		j.logger.ErrorContext(ctx, "Weekly report run failed", "error", err)
		return
	}

	switch outcome.Status() {
	case commands.RunStatusNoOp:
		j.logger.InfoContext(ctx, "Weekly report run skipped: no orders in window")
	default:
		j.logger.InfoContext(ctx, "Weekly report run completed", "recipients", len(outcome.Events()))
	}
}
