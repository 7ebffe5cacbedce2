package services

import (
	"errors"
	"fmt"

	"salesreport/internal/core/domain/model/user"
)

// ErrDirectoryInconsistent is the sentinel for a user directory that cannot
// yield exactly one sender identity.
var ErrDirectoryInconsistent = errors.New("directory is inconsistent")

// DirectoryInconsistencyError reports that the directory resolved zero or
// multiple Bot sender identities. This is fatal for a pipeline run: without
// exactly one Bot there is no answer to who the report is from.
type DirectoryInconsistencyError struct {
	// BotCount is the number of Bot users observed in the directory.
	BotCount int
}

// NewDirectoryInconsistencyError creates a DirectoryInconsistencyError for
// the observed bot count.
func NewDirectoryInconsistencyError(botCount int) *DirectoryInconsistencyError {
	return &DirectoryInconsistencyError{BotCount: botCount}
}

func (e *DirectoryInconsistencyError) Error() string {
	return fmt.Sprintf("%s: expected exactly 1 bot sender, found %d", ErrDirectoryInconsistent, e.BotCount)
}

func (e *DirectoryInconsistencyError) Unwrap() error {
	return ErrDirectoryInconsistent
}

// RecipientResolver is a domain service that derives the sending identity
// and the recipient list from a fetched user directory.
//
// Business rules:
//   - The sender is the single Bot user; zero or multiple bots is a
//     DirectoryInconsistencyError
//   - Recipients are all employees flagged as approvers, in directory
//     order; an empty recipient list is valid and simply means there is
//     nothing to dispatch to
//
// Example usage:
//
//	resolver := services.NewRecipientResolver()
//	sender, err := resolver.ResolveSender(users)
//	if errors.Is(err, services.ErrDirectoryInconsistent) {
//	    // The run cannot determine who the report is from
//	    return err
//	}
//	recipients, err := resolver.ResolveRecipients(users)
type RecipientResolver struct{}

// NewRecipientResolver creates a new RecipientResolver instance.
func NewRecipientResolver() RecipientResolver {
	return RecipientResolver{}
}

// ResolveSender returns the single Bot user from the directory.
// Fails with DirectoryInconsistencyError when the directory holds zero or
// more than one Bot, or with a validation error for corrupted entries.
func (r RecipientResolver) ResolveSender(users []*user.User) (*user.User, error) {
	var sender *user.User
	botCount := 0

	for _, u := range users {
		if err := u.Validate(); err != nil {
			return nil, err
		}

		if u.IsBot() {
			botCount++
			sender = u
		}
	}

	if botCount != 1 {
		return nil, NewDirectoryInconsistencyError(botCount)
	}

	return sender, nil
}

// ResolveRecipients returns all approver employees in directory order.
// An empty result is valid, not an error.
func (r RecipientResolver) ResolveRecipients(users []*user.User) ([]*user.User, error) {
	recipients := make([]*user.User, 0)

	for _, u := range users {
		if err := u.Validate(); err != nil {
			return nil, err
		}

		if u.IsApprover() {
			recipients = append(recipients, u)
		}
	}

	return recipients, nil
}
