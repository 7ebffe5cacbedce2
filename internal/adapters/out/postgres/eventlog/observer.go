package eventlog

import (
	"context"
	"log/slog"
	"time"

	"salesreport/internal/core/domain/model/report"
	"salesreport/internal/core/ports"
)

const appendTimeout = 5 * time.Second

// Observer adapts the dispatch event log to the dispatcher's observer
// contract. Logging is best effort from the dispatch run's point of view: a
// failed append is reported through the logger and never disturbs the run.
type Observer struct {
	log    ports.DispatchEventLog
	logger *slog.Logger
}

// NewObserver creates an observer that appends every event to the log.
func NewObserver(log ports.DispatchEventLog, logger *slog.Logger) *Observer {
	return &Observer{
		log:    log,
		logger: logger,
	}
}

// Notify appends the event to the log.
func (o *Observer) Notify(event report.DispatchEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
	defer cancel()

	if err := o.log.Append(ctx, event); err != nil {
		o.logger.Error("failed to record dispatch event",
			"recipient", event.RecipientAddress,
			"error", err)
	}
}
