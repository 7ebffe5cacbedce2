package queries

import (
	"errors"
	"time"

	"salesreport/internal/pkg/errs"
	"salesreport/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetSalesTotalQueryIsNotConstructed = errors.New(
		"GetSalesTotalQuery must be created via NewGetSalesTotalQuery constructor",
	)
	ErrWindowIsInverted = errors.New("window start must precede window end")
)

// GetSalesTotalQuery computes the sales total over an arbitrary window
// without building or dispatching a report. Bounds are exclusive on both
// ends, matching the reporting pipeline's aggregation semantics.
//
// Example:
//
//	query, err := NewGetSalesTotalQuery(from, to)
//	if err != nil {
//	    return err
//	}
//
//	total, err := NewGetSalesTotalQueryHandler(db).Handle(ctx, query)
//	fmt.Printf("%d orders totalling %s\n", total.OrderCount, total.TotalAmount)
type GetSalesTotalQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetSalesTotalQuery creates a query over the given window.
// Both bounds must be non-zero and from must precede to.
func NewGetSalesTotalQuery(from, to time.Time) (GetSalesTotalQuery, error) {
	if from.IsZero() {
		return GetSalesTotalQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetSalesTotalQuery{}, errs.NewValueIsRequiredError("to")
	}
	if !from.Before(to) {
		return GetSalesTotalQuery{}, ErrWindowIsInverted
	}

	return GetSalesTotalQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSalesTotalQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesTotalQueryIsNotConstructed)
}

// From returns the exclusive lower bound of the window.
func (q GetSalesTotalQuery) From() time.Time {
	return q.from
}

// To returns the exclusive upper bound of the window.
func (q GetSalesTotalQuery) To() time.Time {
	return q.to
}

// GetSalesTotalQueryResponse represents the aggregate over the window.
type GetSalesTotalQueryResponse struct {
	TotalAmount decimal.Decimal
	OrderCount  int
}
