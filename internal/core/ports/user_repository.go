package ports

import (
	"context"

	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for the user directory.
type UserRepository interface {
	// Add persists a new directory user to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a directory user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetAll retrieves the complete directory in insertion order. Sender
	// and recipient filtering happens in the domain, not in the store.
	//
	// Fails with errs.DataSourceError when the directory is unavailable.
	GetAll(ctx context.Context) ([]*user.User, error)
}
