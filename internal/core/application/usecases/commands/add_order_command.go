package commands

import (
	"errors"
	"time"

	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/core/domain/model/order"
	"salesreport/internal/pkg/errs"
	"salesreport/internal/pkg/guard"
)

// ErrAddOrderCommandIsNotConstructed is returned when validating a command
// not created through the constructor.
var ErrAddOrderCommandIsNotConstructed = errors.New(
	"AddOrderCommand must be created via NewAddOrderCommand constructor",
)

// AddOrderCommand represents a request to register a completed sales order
// in the order source.
//
// Example:
//
//	item, _ := order.NewLineItem(decimal.NewFromInt(25), 2)
//	cmd, err := NewAddOrderCommand(kernel.NewUUID(), time.Now().UTC(), []order.LineItem{item})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAddOrderCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type AddOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	orderedAt time.Time
	items     []order.LineItem

	guard guard.ConstructorGuard
}

// NewAddOrderCommand creates a command to register a sales order.
// The items may be empty; an order with no positions totals zero.
func NewAddOrderCommand(orderID kernel.UUID, orderedAt time.Time, items []order.LineItem) (AddOrderCommand, error) {
	command := AddOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setOrderedAt(orderedAt),
		command.setItems(items),
	); err != nil {
		return AddOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c AddOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderedAt returns the moment the order was placed.
func (c AddOrderCommand) OrderedAt() time.Time {
	return c.orderedAt
}

// Items returns a copy of the order's line items.
func (c AddOrderCommand) Items() []order.LineItem {
	items := make([]order.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *AddOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderCommand) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderedAt")
	}

	c.orderedAt = orderedAt
	return nil
}

func (c *AddOrderCommand) setItems(items []order.LineItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.LineItem, len(items))
	copy(c.items, items)
	return nil
}
