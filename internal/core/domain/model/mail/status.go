package mail

import (
	"fmt"

	"salesreport/internal/pkg/errs"
)

// Status is the transport's reported outcome for one message.
// Only StatusAccepted counts as delivery; any other status aborts the
// dispatch run.
type Status int

const (
	// StatusUnknown represents an invalid or undefined outcome.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAccepted means the transport accepted the message for delivery.
	StatusAccepted

	// StatusRejected means the transport refused the message, e.g. a bad
	// address or policy rejection.
	StatusRejected

	// StatusTransportFault means the transport itself failed: connection
	// error, timeout, protocol fault.
	StatusTransportFault
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusAccepted:       "Accepted",
		StatusRejected:       "Rejected",
		StatusTransportFault: "TransportFault",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAccepted:       "Accepted",
		StatusRejected:       "Rejected",
		StatusTransportFault: "TransportFault",
	}
}

// Validate checks if the Status value is a valid transport outcome.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsAccepted reports whether the status counts as a successful delivery.
func (s Status) IsAccepted() bool {
	return s == StatusAccepted
}
