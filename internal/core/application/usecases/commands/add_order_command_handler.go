package commands

import (
	"context"

	"salesreport/internal/core/domain/model/order"
)

// AddOrderCommandHandler handles the business logic for order registration.
type AddOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderCommandHandler creates a handler for order registration.
// Requires an OrderUoWFactory for transactional persistence.
func NewAddOrderCommandHandler(uowFactory OrderUoWFactory) AddOrderCommandHandler {
	return AddOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order registration command.
// Uses a transaction to ensure the order is properly persisted or rolled
// back on error.
func (h AddOrderCommandHandler) Handle(ctx context.Context, command AddOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.NewOrder(command.OrderID(), command.OrderedAt(), command.Items())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
