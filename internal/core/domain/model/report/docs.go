// Package report provides the sales report artifact and its dispatch
// vocabulary.
//
// The package includes:
//   - SalesReport: built once per pipeline run from an order collection;
//     carries the construction timestamp and the exact decimal total, and
//     renders both a plain-text and an HTML summary from those two fields
//   - DispatchEvent: the record of one successful delivery to one recipient
//
// A report's total amount always equals the sum of the totals of the orders
// it was built from.
package report
