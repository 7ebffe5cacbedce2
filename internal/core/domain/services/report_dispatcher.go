package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salesreport/internal/core/domain/model/mail"
	"salesreport/internal/core/domain/model/report"
	"salesreport/internal/core/domain/model/user"
	"salesreport/internal/core/ports"
	"salesreport/internal/pkg/errs"
)

// SubjectSalesReport is the fixed subject line of every dispatched report.
const SubjectSalesReport = "Sales report"

// ErrDeliveryFailed is the sentinel for a transport call that did not end
// in acceptance.
var ErrDeliveryFailed = errors.New("delivery failed")

// DeliveryError reports that a recipient's transport call returned anything
// other than acceptance. It aborts the current run and carries the
// recipient identity and the reported status for manual remediation.
type DeliveryError struct {
	// Recipient identifies the failed recipient as "Name <address>".
	Recipient string

	// Status is the transport's reported outcome.
	Status mail.Status

	// Cause is the underlying transport error, if any.
	Cause error
}

// NewDeliveryError creates a DeliveryError for the given recipient and status.
func NewDeliveryError(recipient string, status mail.Status, cause error) *DeliveryError {
	return &DeliveryError{Recipient: recipient, Status: status, Cause: cause}
}

func (e *DeliveryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: recipient %s, status %s (cause: %s)", ErrDeliveryFailed, e.Recipient, e.Status, e.Cause)
	}
	return fmt.Sprintf("%s: recipient %s, status %s", ErrDeliveryFailed, e.Recipient, e.Status)
}

func (e *DeliveryError) Unwrap() error {
	return ErrDeliveryFailed
}

// EventObserver receives dispatch events as they are emitted, in send
// order, before the next recipient's send begins. Observers must not block
// for long; the dispatch loop waits for them.
type EventObserver interface {
	Notify(event report.DispatchEvent)
}

// ReportDispatcher is the domain service that delivers a built report to a
// recipient list over a mail transport.
//
// Dispatch policy, per recipient in the order supplied:
//   - A recipient without a contact address is skipped silently: no event,
//     no error, the loop continues. This is a deliberate policy, not a
//     best-effort heuristic.
//   - Otherwise a message is rendered from the sender to the recipient with
//     the fixed subject and both report renderings, and handed to the
//     transport. The loop suspends until the transport answers.
//   - Acceptance emits one DispatchEvent and the loop continues.
//   - Any other outcome aborts the run immediately with a DeliveryError;
//     recipients after the failed one are never contacted. One bad address
//     therefore blocks all recipients behind it in iteration order.
//
// The loop runs strictly sequentially so the set of already-notified
// recipients at the abort point is deterministic and reproducible.
type ReportDispatcher struct {
	transport ports.MailTransport
	observers []EventObserver
}

// NewReportDispatcher creates a dispatcher over the given transport.
// Observers are optional; each emitted event is delivered to all of them
// in registration order before the dispatch loop moves on.
func NewReportDispatcher(transport ports.MailTransport, observers ...EventObserver) ReportDispatcher {
	return ReportDispatcher{
		transport: transport,
		observers: observers,
	}
}

// runState tracks the dispatch loop through its explicit states.
//
//	idle -> sending -> idle   (accepted, next recipient)
//	idle -> sending -> aborted (non-accepted outcome, run over)
type runState int

const (
	runIdle runState = iota
	runSending
	runAborted
)

// dispatchRun holds the state of one Dispatch call: the current loop state
// and the events emitted so far, in send order.
type dispatchRun struct {
	state  runState
	events []report.DispatchEvent
}

func newDispatchRun(capacity int) *dispatchRun {
	return &dispatchRun{
		state:  runIdle,
		events: make([]report.DispatchEvent, 0, capacity),
	}
}

func (r *dispatchRun) sending() {
	r.state = runSending
}

func (r *dispatchRun) delivered(event report.DispatchEvent) {
	r.events = append(r.events, event)
	r.state = runIdle
}

func (r *dispatchRun) aborted() {
	r.state = runAborted
}

// Dispatch sends the report to every eligible recipient in the order
// supplied and returns the emitted events in send order.
//
// On a non-accepted transport outcome the run aborts: the events emitted
// before the abort point are returned together with a DeliveryError
// identifying the failed recipient. See the type documentation for the
// full per-recipient policy.
func (d ReportDispatcher) Dispatch(
	ctx context.Context,
	salesReport *report.SalesReport,
	sender *user.User,
	recipients []*user.User,
) ([]report.DispatchEvent, error) {
	if err := salesReport.Validate(); err != nil {
		return nil, err
	}
	if err := sender.Validate(); err != nil {
		return nil, err
	}

	senderAddress, ok := sender.Email()
	if !ok {
		return nil, errs.NewValueIsRequiredError("sender address")
	}

	run := newDispatchRun(len(recipients))

	for _, recipient := range recipients {
		if err := recipient.Validate(); err != nil {
			return run.events, err
		}

		address, hasAddress := recipient.Email()
		if !hasAddress {
			// Missing address: skip without event or error.
			continue
		}

		run.sending()

		message, err := mail.NewMessage(
			senderAddress, sender.FullName(),
			address, recipient.FullName(),
			SubjectSalesReport,
			salesReport.Summary(), salesReport.HTML(),
		)
		if err != nil {
			run.aborted()
			return run.events, err
		}

		status, sendErr := d.transport.SendMessage(ctx, message)
		if !status.IsAccepted() {
			run.aborted()
			return run.events, NewDeliveryError(
				fmt.Sprintf("%s <%s>", recipient.FullName(), address),
				status,
				sendErr,
			)
		}

		event := report.DispatchEvent{
			RecipientName:    recipient.FullName(),
			RecipientAddress: address.String(),
			SentAt:           time.Now().UTC(),
		}

		for _, observer := range d.observers {
			observer.Notify(event)
		}

		run.delivered(event)
	}

	return run.events, nil
}
