package commands

import (
	"errors"

	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/core/domain/model/user"
	"salesreport/internal/pkg/errs"
	"salesreport/internal/pkg/guard"
)

// ErrAddUserCommandIsNotConstructed is returned when validating a command
// not created through the constructor.
var ErrAddUserCommandIsNotConstructed = errors.New(
	"AddUserCommand must be created via NewAddUserCommand constructor",
)

// AddUserCommand represents a request to register a directory member:
// an employee, an approver, or the Bot sender identity.
//
// Example:
//
//	cmd, err := NewAddUserCommand(kernel.NewUUID(), user.RoleEmployee,
//	    "Alice", "Smith", "alice@example.com", true)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAddUserCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type AddUserCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	role       user.Role
	firstName  string
	lastName   string
	email      string
	isApprover bool

	guard guard.ConstructorGuard
}

// NewAddUserCommand creates a command to register a directory member.
// email may be empty; a user without an address is a legal directory entry.
// Only employees may carry the approver flag.
func NewAddUserCommand(
	userID kernel.UUID,
	role user.Role,
	firstName, lastName, email string,
	isApprover bool,
) (AddUserCommand, error) {
	command := AddUserCommand{
		lastName:   lastName,
		email:      email,
		isApprover: isApprover,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setRole(role, isApprover),
		command.setFirstName(firstName),
	); err != nil {
		return AddUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddUserCommand) Validate() error {
	return c.guard.Validate(ErrAddUserCommandIsNotConstructed)
}

// UserID returns the unique identifier for the directory member.
func (c AddUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the member's variant discriminant.
func (c AddUserCommand) Role() user.Role {
	return c.role
}

// FirstName returns the member's first name.
func (c AddUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the member's last name; may be empty.
func (c AddUserCommand) LastName() string {
	return c.lastName
}

// Email returns the member's contact address; empty means none.
func (c AddUserCommand) Email() string {
	return c.email
}

// IsApprover reports whether the member should receive reports.
func (c AddUserCommand) IsApprover() bool {
	return c.isApprover
}

func (c *AddUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *AddUserCommand) setRole(role user.Role, isApprover bool) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role == user.RoleBot && isApprover {
		return user.ErrBotCannotBeApprover
	}

	c.role = role
	return nil
}

func (c *AddUserCommand) setFirstName(firstName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}

	c.firstName = firstName
	return nil
}
