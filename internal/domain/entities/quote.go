package entities

import "time"

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Quote is a contractor's bid against a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// At most one quote per project holds accepted.
type Quote struct {
	ID           string      `json:"id"`
	ProjectID    string      `json:"project_id"`
	ContractorID string      `json:"contractor_id"`
	PriceCents   int64       `json:"price_cents"`
	Message      string      `json:"message,omitempty"`
	Status       QuoteStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
