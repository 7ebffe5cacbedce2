// Package order provides the domain model for completed sales orders.
//
// The package includes:
//   - Order: an immutable aggregate identified by UUID, carrying the
//     ordered-at timestamp and the ordered sequence of line items
//   - LineItem: a value object of unit price and quantity
//
// Key business rules:
//   - A line item's total is unit price times quantity and is never negative
//   - An order's total is the exact decimal sum of its line item totals
//   - An order without line items totals zero
//
// All money amounts use exact decimal arithmetic; no floating point is
// involved in total computation.
package order
