package commands

import (
	"context"

	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/core/domain/model/user"
)

// AddUserCommandHandler handles the business logic for directory registration.
type AddUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewAddUserCommandHandler creates a handler for directory registration.
// Requires a UserUoWFactory for transactional persistence.
func NewAddUserCommandHandler(uowFactory UserUoWFactory) AddUserCommandHandler {
	return AddUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the directory registration command.
// Builds the member through the domain factories so role and approver
// consistency is enforced before anything reaches storage.
func (h AddUserCommandHandler) Handle(ctx context.Context, command AddUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	var email *kernel.Email
	if command.Email() != "" {
		address, err := kernel.NewEmail(command.Email())
		if err != nil {
			return err
		}
		email = &address
	}

	member, err := user.RestoreUser(
		command.UserID(),
		command.Role(),
		command.FirstName(),
		command.LastName(),
		email,
		command.IsApprover(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, member); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
