package report

import (
	"errors"
	"fmt"
	"time"

	"salesreport/internal/core/domain/model/order"
	"salesreport/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrSalesReportIsNotConstructed is returned when a SalesReport instance was
// not created through the Build factory function.
var ErrSalesReportIsNotConstructed = errors.New("SalesReport must be created via Build")

// SalesReport is the immutable artifact of one pipeline run: the moment it
// was built and the exact decimal sum of the aggregated orders' totals.
// Both renderings (Summary and HTML) are derived deterministically from
// those two fields. The report itself is never persisted by the core.
type SalesReport struct {
	// createdAt is stamped at construction, not taken from any input order
	createdAt time.Time

	// totalAmount is the exact decimal sum of the orders' totals
	totalAmount decimal.Decimal

	// isConstructed ensures the report was created via Build
	isConstructed bool
}

// Build creates a SalesReport from the given order collection.
//
// A nil collection is a caller bug and fails with a value-required error.
// An empty non-nil collection is valid input and yields a report with total
// amount zero; deciding whether an empty window should be reported at all
// is the pipeline's responsibility, not this function's.
//
// Example:
//
//	r, err := report.Build(orders)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r.Summary())
func Build(orders []*order.Order) (*SalesReport, error) {
	if orders == nil {
		return nil, errs.NewValueIsRequiredError("orders")
	}

	total := decimal.Zero
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(o.Total())
	}

	return &SalesReport{
		createdAt:     time.Now().UTC(),
		totalAmount:   total,
		isConstructed: true,
	}, nil
}

// Validate ensures the SalesReport instance was properly constructed.
func (r *SalesReport) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrSalesReportIsNotConstructed
	}

	return nil
}

// CreatedAt returns the moment the report was built.
func (r *SalesReport) CreatedAt() time.Time {
	return r.createdAt
}

// TotalAmount returns the exact decimal sum of the aggregated orders' totals.
func (r *SalesReport) TotalAmount() decimal.Decimal {
	return r.totalAmount
}

// Summary returns the plain-text rendering of the report.
func (r *SalesReport) Summary() string {
	return fmt.Sprintf("Report created on %s\nTotalAmount: %s",
		r.createdAt.Format(time.RFC3339), r.totalAmount)
}

// HTML returns the HTML rendering of the report.
func (r *SalesReport) HTML() string {
	return fmt.Sprintf("<html>Report created on <b>%s</b> <p>TotalAmount: %s</p></html>",
		r.createdAt.Format(time.RFC3339), r.totalAmount)
}
