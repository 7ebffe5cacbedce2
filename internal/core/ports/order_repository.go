// Package ports defines the collaborator interfaces of the reporting core.
// These interfaces establish contracts between the core and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order source.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetBetween retrieves every order whose ordered-at timestamp lies
	// strictly between from and to (exclusive on both ends). Callers must
	// not rely on any particular ordering of the result.
	//
	// Fails with errs.DataSourceError when the order source is
	// unavailable; the repository never retries internally.
	GetBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error)
}
