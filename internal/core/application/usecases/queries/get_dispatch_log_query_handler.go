package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDispatchLogQueryHandler retrieves dispatch log entries from the database.
type GetDispatchLogQueryHandler struct {
	db *gorm.DB
}

// NewGetDispatchLogQueryHandler creates a handler for dispatch log queries.
// Requires a GORM database connection for query execution.
func NewGetDispatchLogQueryHandler(db *gorm.DB) GetDispatchLogQueryHandler {
	return GetDispatchLogQueryHandler{db: db}
}

// Handle executes the query to retrieve the most recent dispatch log
// entries, newest first.
func (h GetDispatchLogQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchLogQuery,
) ([]GetDispatchLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetDispatchLogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			recipient_name,
			recipient_address,
			sent_at
		FROM dispatch_events
		ORDER BY sent_at DESC, id DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetDispatchLogQueryResponse

		err = rows.Scan(
			&entry.RecipientName,
			&entry.RecipientAddress,
			&entry.SentAt,
		)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
