package entities

import "time"

// BookingRequest is a proposed on-site appointment window backed by a captured deposit.
// It is immutable once created.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
type BookingRequest struct {
	ID                string    `json:"id"`
	ProjectID         string    `json:"project_id"`
	EstimateDepositID string    `json:"estimate_deposit_id"`
	StartAt           time.Time `json:"start_at"`
	EndAt             time.Time `json:"end_at"`
	Note              string    `json:"note,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
