package order

import (
	"fmt"

	"salesreport/internal/pkg/errs"
	"salesreport/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when validating a zero-value LineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError("LineItem must be created via NewLineItem constructor")

// LineItem is an immutable value object representing one priced position of
// an order: a non-negative unit price and a positive quantity.
type LineItem struct { //nolint:recvcheck //using for validation
	unitPrice decimal.Decimal
	quantity  int
	guard     guard.ConstructorGuard
}

// NewLineItem creates a LineItem. The unit price must not be negative and
// the quantity must be at least 1.
func NewLineItem(unitPrice decimal.Decimal, quantity int) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := item.setUnitPrice(unitPrice); err != nil {
		return LineItem{}, err
	}
	if err := item.setQuantity(quantity); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// UnitPrice returns the price of a single unit.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Quantity returns the number of units.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Total returns unit price multiplied by quantity. Never negative.
func (li LineItem) Total() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity)))
}

func (li *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}
	li.unitPrice = unitPrice
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}
