package http

import "time"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderLine is one priced position of an incoming order.
type NewOrderLine struct {
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// NewOrder is the request body for order registration.
type NewOrder struct {
	ID        string         `json:"id,omitempty"`
	OrderedAt time.Time      `json:"orderedAt"`
	Items     []NewOrderLine `json:"items"`
}

// NewUser is the request body for directory registration.
type NewUser struct {
	ID         string `json:"id,omitempty"`
	Role       string `json:"role"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName,omitempty"`
	Email      string `json:"email,omitempty"`
	IsApprover bool   `json:"isApprover,omitempty"`
}

// RunReport is the request body for a manual pipeline run. An omitted asOf
// anchors the run at the current moment.
type RunReport struct {
	AsOf *time.Time `json:"asOf,omitempty"`
}

// DispatchEvent is one recorded send in API responses.
type DispatchEvent struct {
	RecipientName    string    `json:"recipientName"`
	RecipientAddress string    `json:"recipientAddress"`
	SentAt           time.Time `json:"sentAt"`
}

// RunOutcome is the response body of a pipeline run.
type RunOutcome struct {
	Status string          `json:"status"`
	Events []DispatchEvent `json:"events"`
}

// SalesTotal is the response body of the sales total query.
type SalesTotal struct {
	TotalAmount string `json:"totalAmount"`
	OrderCount  int    `json:"orderCount"`
}
