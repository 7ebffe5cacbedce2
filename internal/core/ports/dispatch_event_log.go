package ports

import (
	"context"

	"salesreport/internal/core/domain/model/report"
)

// DispatchEventLog records dispatch events for external observability.
// Appending is fire-and-forget from the dispatcher's point of view; a
// failing log must not disturb the dispatch run itself.
type DispatchEventLog interface {
	Append(ctx context.Context, event report.DispatchEvent) error
}
