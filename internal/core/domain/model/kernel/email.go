package kernel

import (
	"errors"
	"fmt"
	"strings"

	"salesreport/internal/pkg/errs"
	"salesreport/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when attempting to use an improperly
// initialized Email. Emails must be created via NewEmail to ensure validity.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail constructor")

// Email is an immutable value object holding a validated contact address.
// The zero value is invalid and fails validation - use NewEmail.
//
// A directory user without any Email is a legal state (that user is simply
// excluded from dispatch); an Email that exists is always non-empty and
// addressable.
//
// Example:
//
//	address, err := kernel.NewEmail("anna.kowalska@example.com")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(address.String())
type Email struct { //nolint:recvcheck //using for validation
	address string
	guard   guard.ConstructorGuard
}

// NewEmail creates an Email from the given address string.
// The address must be non-empty and contain exactly one "@" with a non-empty
// local part and domain. Returns a validation error otherwise.
func NewEmail(address string) (Email, error) {
	email := Email{
		guard: guard.NewConstructorGuard(),
	}

	if err := email.setAddress(address); err != nil {
		return Email{}, err
	}

	return email, nil
}

// Validate checks the Email was created through NewEmail.
// Returns ErrEmailIsNotConstructed for the zero value.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// String returns the address in its original form.
func (e Email) String() string {
	return e.address
}

// IsEqual compares two emails by address, case-insensitively.
func (e Email) IsEqual(other Email) bool {
	return strings.EqualFold(e.address, other.address)
}

func (e *Email) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	local, domain, ok := strings.Cut(address, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("%q is not a valid mail address", address))
	}

	if strings.ContainsAny(address, " \t\r\n") {
		return errs.NewValueIsInvalidErrorWithCause("address", errors.New("address must not contain whitespace"))
	}

	e.address = address
	return nil
}
