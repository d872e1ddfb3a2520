package response

import (
	"time"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/domain/escrow"
)

type DepositResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	CustomerID   string    `json:"customer_id"`
	ContractorID string    `json:"contractor_id"`
	AmountCents  int64     `json:"amount_cents"`
	Status       string    `json:"status"`
	Captured     bool      `json:"captured"`
	PaymentID    string    `json:"payment_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromDeposit(d entities.EstimateDeposit) DepositResponse {
	return DepositResponse{
		ID:           d.ID,
		ProjectID:    d.ProjectID,
		CustomerID:   d.CustomerID,
		ContractorID: d.ContractorID,
		AmountCents:  d.AmountCents,
		Status:       string(d.Status),
		Captured:     escrow.IsDepositCaptured(&d),
		PaymentID:    d.PaymentID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func FromDeposits(deposits []entities.EstimateDeposit) []DepositResponse {
	out := make([]DepositResponse, 0, len(deposits))
	for _, d := range deposits {
		out = append(out, FromDeposit(d))
	}
	return out
}

type BookingResponse struct {
	ID                string    `json:"id"`
	ProjectID         string    `json:"project_id"`
	EstimateDepositID string    `json:"estimate_deposit_id"`
	StartAt           time.Time `json:"start_at"`
	EndAt             time.Time `json:"end_at"`
	Note              string    `json:"note,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromBooking(b entities.BookingRequest) BookingResponse {
	return BookingResponse{
		ID:                b.ID,
		ProjectID:         b.ProjectID,
		EstimateDepositID: b.EstimateDepositID,
		StartAt:           b.StartAt,
		EndAt:             b.EndAt,
		Note:              b.Note,
		CreatedAt:         b.CreatedAt,
	}
}

func FromBookings(bookings []entities.BookingRequest) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}
