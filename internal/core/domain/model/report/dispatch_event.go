package report

import "time"

// DispatchEvent marks one successful delivery of a report to one recipient.
// Events are emitted in send order, one per accepted message, and handed to
// observers fire-and-forget: the dispatcher keeps no ownership after
// emission.
type DispatchEvent struct {
	// RecipientName is the recipient's display name.
	RecipientName string

	// RecipientAddress is the contact address the report was sent to.
	RecipientAddress string

	// SentAt is the moment the transport accepted the message.
	SentAt time.Time
}
