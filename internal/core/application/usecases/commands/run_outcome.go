package commands

import (
	"errors"
	"fmt"

	"salesreport/internal/core/domain/model/report"
	"salesreport/internal/pkg/guard"
)

// ErrRunOutcomeIsNotConstructed is returned when validating a zero-value RunOutcome.
var ErrRunOutcomeIsNotConstructed = errors.New(
	"RunOutcome must be created via NewNoOpOutcome or NewCompletedOutcome constructor",
)

// RunStatus describes how a pipeline run ended.
type RunStatus int

const (
	// RunStatusUnknown is the zero value and never a legal outcome.
	RunStatusUnknown RunStatus = iota

	// RunStatusNoOp means the reporting window held no orders and the run
	// stopped before touching the directory or the transport.
	RunStatusNoOp

	// RunStatusCompleted means a report was built and dispatched to every
	// eligible recipient.
	RunStatusCompleted
)

func getRunStatusStrings() map[RunStatus]string {
	return map[RunStatus]string{
		RunStatusUnknown:   "unknown",
		RunStatusNoOp:      "noop",
		RunStatusCompleted: "completed",
	}
}

func getValidRunStatuses() []RunStatus {
	return []RunStatus{RunStatusNoOp, RunStatusCompleted}
}

// Validate checks that the status is one of the legal outcomes.
func (s RunStatus) Validate() error {
	for _, valid := range getValidRunStatuses() {
		if s == valid {
			return nil
		}
	}

	return fmt.Errorf("invalid run status: %d", int(s))
}

// String returns the text form of the status, or "unknown" for illegal values.
func (s RunStatus) String() string {
	if name, ok := getRunStatusStrings()[s]; ok {
		return name
	}
	return getRunStatusStrings()[RunStatusUnknown]
}

// RunOutcome is the immutable result of one pipeline run: how it ended and
// the dispatch events it emitted, in send order. A NoOp outcome carries no
// events by construction.
type RunOutcome struct { //nolint:recvcheck //using for validation
	status RunStatus
	events []report.DispatchEvent

	guard guard.ConstructorGuard
}

// NewNoOpOutcome creates the outcome of a run that found an empty window.
func NewNoOpOutcome() RunOutcome {
	return RunOutcome{
		status: RunStatusNoOp,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewCompletedOutcome creates the outcome of a run that dispatched the
// report. events may be empty when the directory holds no recipients.
func NewCompletedOutcome(events []report.DispatchEvent) RunOutcome {
	outcome := RunOutcome{
		status: RunStatusCompleted,
		events: make([]report.DispatchEvent, len(events)),
		guard:  guard.NewConstructorGuard(),
	}
	copy(outcome.events, events)

	return outcome
}

// Validate ensures the outcome was created through a constructor.
func (o RunOutcome) Validate() error {
	return o.guard.Validate(ErrRunOutcomeIsNotConstructed)
}

// Status returns how the run ended.
func (o RunOutcome) Status() RunStatus {
	return o.status
}

// Events returns a copy of the emitted dispatch events in send order.
func (o RunOutcome) Events() []report.DispatchEvent {
	events := make([]report.DispatchEvent, len(o.events))
	copy(events, o.events)
	return events
}
