package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetSalesTotalQueryHandler computes sales totals straight in the database.
// Summation happens over exact numeric columns so the result matches what
// the domain would compute item by item.
type GetSalesTotalQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesTotalQueryHandler creates a handler for sales total queries.
// Requires a GORM database connection for query execution.
func NewGetSalesTotalQueryHandler(db *gorm.DB) GetSalesTotalQueryHandler {
	return GetSalesTotalQueryHandler{db: db}
}

// Handle executes the aggregation over the query's window.
// Orders with no line items contribute zero to the total but still count.
func (h GetSalesTotalQueryHandler) Handle(
	ctx context.Context,
	query GetSalesTotalQuery,
) (GetSalesTotalQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesTotalQueryResponse{}, err
	}

	var totalAmount decimal.Decimal
	var orderCount int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(li.unit_price * li.quantity), 0),
			COUNT(DISTINCT o.id)
		FROM orders o
		LEFT JOIN line_items li ON li.order_id = o.id
		WHERE o.ordered_at > ? AND o.ordered_at < ?
	`, query.From(), query.To()).Row()

	if err := row.Scan(&totalAmount, &orderCount); err != nil {
		return GetSalesTotalQueryResponse{}, err
	}

	return GetSalesTotalQueryResponse{
		TotalAmount: totalAmount,
		OrderCount:  orderCount,
	}, nil
}
