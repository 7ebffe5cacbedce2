package user

import (
	"fmt"

	"salesreport/internal/pkg/errs"
)

// Role is the discriminant of the User variant. The directory holds two
// kinds of users: human employees and the automated Bot identity that
// reports are sent from.
//
// Role is a value object that validates itself and provides string
// representations for persistence and display.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleEmployee is a human directory member. Employees may carry the
	// approver flag that makes them report recipients.
	RoleEmployee

	// RoleBot is the automated sender identity. The directory is expected
	// to contain exactly one Bot.
	RoleBot
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleEmployee: "Employee",
		RoleBot:      "Bot",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleEmployee: "Employee",
		RoleBot:      "Bot",
	}
}

// Validate checks if the Role value is valid.
// Valid roles are Employee and Bot; RoleUnknown and any other values fail.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// RoleFromString parses a role name, case-sensitively, into a Role.
// Only valid roles parse; anything else fails with a validation error.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
