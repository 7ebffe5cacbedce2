package order

import (
	"errors"
	"time"

	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a completed sales order. It is an immutable aggregate:
// once constructed, its identity, timestamp, and line items never change.
//
// Order invariants:
//   - Must have a valid unique identifier
//   - Must have a non-zero ordered-at timestamp
//   - Every line item is a validated LineItem value
//   - Total equals the exact decimal sum of the line item totals;
//     an order with no line items totals zero
//
// The struct uses private fields so the invariants can only be established
// through the constructor.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderedAt is the moment the order was placed
	orderedAt time.Time

	// items is the ordered sequence of priced positions
	items []LineItem

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a validated Order.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - orderedAt: when the order was placed (must be non-zero)
//   - items: the order's line items; may be empty, in which case the
//     order total is zero
//
// Returns a validation error if any parameter is invalid.
//
// Example:
//
//	item, _ := order.NewLineItem(decimal.NewFromInt(10), 2)
//	o, err := order.NewOrder(kernel.NewUUID(), time.Now(), []order.LineItem{item})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, orderedAt time.Time, items []LineItem) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderedAt(orderedAt),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. It applies the same
// validation as NewOrder; reconstruction of corrupted rows fails loudly
// instead of producing a half-valid aggregate.
func RestoreOrder(id kernel.UUID, orderedAt time.Time, items []LineItem) (*Order, error) {
	return NewOrder(id, orderedAt, items)
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderedAt returns the moment the order was placed.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// Items returns a copy of the order's line items in their original sequence.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the exact decimal sum of the line item totals.
// An order with no line items totals zero.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderedAt")
	}
	o.orderedAt = orderedAt
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}
