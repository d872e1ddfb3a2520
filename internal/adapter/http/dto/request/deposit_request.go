package request

import "time"

// CreateDepositRequest confirms a previewed deposit. ExpectedAmountCents is the amount the
// customer saw; zero skips the check.
type CreateDepositRequest struct {
	ExpectedAmountCents int64 `json:"expected_amount_cents" binding:"omitempty,gt=0"`
}

type AttendanceRequest struct {
	Outcome string `json:"outcome" binding:"required"`
}

type DispositionRequest struct {
	Disposition string `json:"disposition" binding:"required"`
}

type CreateBookingRequest struct {
	EstimateDepositID string    `json:"estimate_deposit_id"`
	StartAt           time.Time `json:"start_at" binding:"required"`
	EndAt             time.Time `json:"end_at" binding:"required"`
	Note              string    `json:"note"`
}
