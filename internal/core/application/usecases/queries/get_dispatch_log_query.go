// Package queries contains read-only operations for system state inspection.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the
// domain aggregates.
package queries

import (
	"errors"
	"fmt"
	"time"

	"salesreport/internal/pkg/guard"
)

var (
	ErrGetDispatchLogQueryIsNotConstructed = errors.New(
		"GetDispatchLogQuery must be created via NewGetDispatchLogQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be greater than 0")
)

// GetDispatchLogQuery retrieves the most recent dispatch log entries.
// The log records every accepted send across all pipeline runs and is the
// operational answer to "who actually received a report, and when".
//
// Example:
//
//	query, err := NewGetDispatchLogQuery(50)
//	if err != nil {
//	    return err
//	}
//
//	entries, err := NewGetDispatchLogQueryHandler(db).Handle(ctx, query)
type GetDispatchLogQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetDispatchLogQuery creates a query for the latest limit log entries.
// The limit must be positive.
func NewGetDispatchLogQuery(limit int) (GetDispatchLogQuery, error) {
	if limit <= 0 {
		return GetDispatchLogQuery{}, fmt.Errorf("%w: %d", ErrLimitIsInvalid, limit)
	}

	return GetDispatchLogQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDispatchLogQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchLogQueryIsNotConstructed)
}

// Limit returns the maximum number of entries to retrieve.
func (q GetDispatchLogQuery) Limit() int {
	return q.limit
}

// GetDispatchLogQueryResponse represents one recorded send.
type GetDispatchLogQueryResponse struct {
	RecipientName    string
	RecipientAddress string
	SentAt           time.Time
}
