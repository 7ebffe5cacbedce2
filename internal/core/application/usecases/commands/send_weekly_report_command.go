package commands

import (
	"errors"
	"time"

	"salesreport/internal/pkg/errs"
	"salesreport/internal/pkg/guard"
)

// ErrSendWeeklyReportCommandIsNotConstructed is returned when validating a
// command not created through the constructor.
var ErrSendWeeklyReportCommandIsNotConstructed = errors.New(
	"SendWeeklyReportCommand must be created via NewSendWeeklyReportCommand constructor",
)

// ReportWindow is the trailing aggregation window of a pipeline run.
const ReportWindow = 7 * 24 * time.Hour

// SendWeeklyReportCommand represents a request to run the reporting pipeline
// as of a given moment. The aggregation window is the trailing seven days
// ending at that moment, exclusive on both ends.
//
// Example:
//
//	cmd, err := NewSendWeeklyReportCommand(time.Now().UTC())
//	if err != nil {
//	    return err
//	}
//
//	handler := NewSendWeeklyReportCommandHandler(uowFactory, resolver, dispatcher)
//	outcome, err := handler.Handle(ctx, cmd)
type SendWeeklyReportCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewSendWeeklyReportCommand creates a command for a run as of the given
// moment. The moment must be non-zero.
func NewSendWeeklyReportCommand(asOf time.Time) (SendWeeklyReportCommand, error) {
	command := SendWeeklyReportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAsOf(asOf); err != nil {
		return SendWeeklyReportCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SendWeeklyReportCommand) Validate() error {
	return c.guard.Validate(ErrSendWeeklyReportCommandIsNotConstructed)
}

// AsOf returns the moment the run is anchored at.
func (c SendWeeklyReportCommand) AsOf() time.Time {
	return c.asOf
}

// WindowStart returns the lower bound of the aggregation window.
func (c SendWeeklyReportCommand) WindowStart() time.Time {
	return c.asOf.Add(-ReportWindow)
}

func (c *SendWeeklyReportCommand) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return errs.NewValueIsRequiredError("asOf")
	}

	c.asOf = asOf
	return nil
}
