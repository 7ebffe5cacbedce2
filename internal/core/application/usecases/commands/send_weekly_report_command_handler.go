package commands

import (
	"context"

	"salesreport/internal/core/domain/model/report"
	"salesreport/internal/core/domain/services"
)

// SendWeeklyReportCommandHandler orchestrates one reporting pipeline run:
// aggregate the trailing window, build the report artifact, resolve the
// sender and recipients from the directory, and dispatch.
//
// The database reads happen inside a single unit of work so the window and
// the directory come from one consistent snapshot; the transaction is
// committed before any transport traffic starts so no database resources
// are held across mail round trips.
//
// Example:
//
//	handler := NewSendWeeklyReportCommandHandler(uowFactory, resolver, dispatcher)
//	cmd, _ := NewSendWeeklyReportCommand(time.Now().UTC())
//	outcome, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrDeliveryFailed):
//	    log.Println("run aborted mid-dispatch")
//	case err != nil:
//	    log.Printf("run failed: %v", err)
//	case outcome.Status() == RunStatusNoOp:
//	    log.Println("empty window, nothing sent")
//	}
type SendWeeklyReportCommandHandler struct {
	uowFactory UoWFactory
	resolver   services.RecipientResolver
	dispatcher services.ReportDispatcher
}

// NewSendWeeklyReportCommandHandler creates a handler for pipeline runs.
func NewSendWeeklyReportCommandHandler(
	uowFactory UoWFactory,
	resolver services.RecipientResolver,
	dispatcher services.ReportDispatcher,
) SendWeeklyReportCommandHandler {
	return SendWeeklyReportCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		dispatcher: dispatcher,
	}
}

// Handle processes one pipeline run.
//
// An empty window short-circuits: the run ends with a NoOp outcome before
// the directory is read or the transport is touched. Otherwise the report
// is built from the fetched orders and dispatched to the resolved
// recipients; the outcome carries the emitted events in send order.
//
// A dispatch abort surfaces as services.ErrDeliveryFailed; events emitted
// before the abort point have already reached the observers.
func (h SendWeeklyReportCommandHandler) Handle(
	ctx context.Context,
	command SendWeeklyReportCommand,
) (RunOutcome, error) {
	if err := command.Validate(); err != nil {
		return RunOutcome{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RunOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetBetween(ctx, command.WindowStart(), command.AsOf())
	if err != nil {
		return RunOutcome{}, err
	}

	if len(orders) == 0 {
		if err = uow.Commit(ctx); err != nil {
			return RunOutcome{}, err
		}
		return NewNoOpOutcome(), nil
	}

	users, err := uow.UserRepository().GetAll(ctx)
	if err != nil {
		return RunOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RunOutcome{}, err
	}

	salesReport, err := report.Build(orders)
	if err != nil {
		return RunOutcome{}, err
	}

	sender, err := h.resolver.ResolveSender(users)
	if err != nil {
		return RunOutcome{}, err
	}

	recipients, err := h.resolver.ResolveRecipients(users)
	if err != nil {
		return RunOutcome{}, err
	}

	events, err := h.dispatcher.Dispatch(ctx, salesReport, sender, recipients)
	if err != nil {
		return RunOutcome{}, err
	}

	return NewCompletedOutcome(events), nil
}
