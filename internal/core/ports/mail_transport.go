package ports

import (
	"context"

	"salesreport/internal/core/domain/model/mail"
)

// MailTransport is the outbound messaging contract. A transport delivers a
// single message synchronously from the caller's perspective: SendMessage
// does not return until the transport has an outcome.
//
// The returned status is the transport's verdict (Accepted, Rejected, or
// TransportFault). The error, when non-nil, carries the underlying cause of
// a TransportFault; a Rejected status typically comes without an error.
// Transports never retry; timeout policy is the transport's own concern and
// surfaces as a TransportFault.
type MailTransport interface {
	SendMessage(ctx context.Context, message mail.Message) (mail.Status, error)
}
