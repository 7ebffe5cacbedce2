package user

import (
	"errors"
	"strings"

	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through one of the factory functions.
	ErrUserIsNotConstructed = errors.New("User must be created via NewEmployee, NewBot, or RestoreUser")

	// ErrBotCannotBeApprover is returned when reconstructing a Bot row that
	// carries the approver flag; only employees can approve reports.
	ErrBotCannotBeApprover = errors.New("a Bot user cannot carry the approver flag")
)

// User represents a directory member: either a human Employee or the
// automated Bot sender identity, discriminated by Role.
//
// User invariants:
//   - Must have a valid unique identifier and a valid role
//   - First name is required; last name may be empty
//   - Email is optional - a user without an email is a legal directory
//     entry that is silently excluded from dispatch
//   - Only employees can carry the approver flag
type User struct {
	// id is the unique identifier for the directory entry
	id kernel.UUID

	// role discriminates the Employee and Bot variants
	role Role

	firstName string
	lastName  string

	// email is nil when the user has no contact address
	email *kernel.Email

	// isApprover marks an employee as a report recipient
	isApprover bool

	// isConstructed ensures the user was created via a factory function
	isConstructed bool
}

// NewEmployee creates a human directory member. The approver flag marks the
// employee as a report recipient. email may be nil when the employee has no
// contact address.
func NewEmployee(id kernel.UUID, firstName, lastName string, email *kernel.Email, isApprover bool) (*User, error) {
	return newUser(id, RoleEmployee, firstName, lastName, email, isApprover)
}

// NewBot creates the automated sender identity. email may be nil, though a
// Bot without an address cannot appear as a message "from" party.
func NewBot(id kernel.UUID, firstName, lastName string, email *kernel.Email) (*User, error) {
	return newUser(id, RoleBot, firstName, lastName, email, false)
}

// RestoreUser reconstructs a User from persistence, validating role and
// approver consistency. Reconstruction of corrupted rows fails loudly.
func RestoreUser(id kernel.UUID, role Role, firstName, lastName string, email *kernel.Email, isApprover bool) (*User, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if role == RoleBot && isApprover {
		return nil, ErrBotCannotBeApprover
	}
	return newUser(id, role, firstName, lastName, email, isApprover)
}

func newUser(id kernel.UUID, role Role, firstName, lastName string, email *kernel.Email, isApprover bool) (*User, error) {
	user := &User{
		role:          role,
		isApprover:    isApprover,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(firstName, lastName),
		user.setEmail(email),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Role returns the user's variant discriminant.
func (u *User) Role() Role {
	return u.role
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name; may be empty.
func (u *User) LastName() string {
	return u.lastName
}

// FullName returns "First Last", or just the first name when no last name
// is set. Used as the display name on dispatched messages.
func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

// Email returns the user's contact address and whether one is set.
func (u *User) Email() (kernel.Email, bool) {
	if u.email == nil {
		return kernel.Email{}, false
	}
	return *u.email, true
}

// IsApprover reports whether the user is an employee flagged as a report
// recipient. Always false for bots.
func (u *User) IsApprover() bool {
	return u.role == RoleEmployee && u.isApprover
}

// IsBot reports whether the user is the automated sender identity.
func (u *User) IsBot() bool {
	return u.role == RoleBot
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(firstName, lastName string) error {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	u.firstName = firstName
	u.lastName = strings.TrimSpace(lastName)
	return nil
}

func (u *User) setEmail(email *kernel.Email) error {
	if email == nil {
		return nil
	}
	if err := email.Validate(); err != nil {
		return err
	}
	addr := *email
	u.email = &addr
	return nil
}
