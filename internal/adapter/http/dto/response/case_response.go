package response

import (
	"time"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/domain/escrow"
)

type CaseResponse struct {
	ID               string                   `json:"id"`
	ProjectID        string                   `json:"project_id"`
	CustomerID       string                   `json:"customer_id"`
	ContractorID     string                   `json:"contractor_id"`
	Status           string                   `json:"status"`
	Bucket           string                   `json:"bucket"`
	Reason           string                   `json:"reason"`
	HeldAmountCents  int64                    `json:"held_amount_cents"`
	ResolutionDocURL string                   `json:"resolution_doc_url,omitempty"`
	ResolutionAction string                   `json:"resolution_action,omitempty"`
	Outcome          *entities.DisputeOutcome `json:"outcome,omitempty"`
	Version          int64                    `json:"version"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

func FromCase(c entities.DisputeCase) CaseResponse {
	return CaseResponse{
		ID:               c.ID,
		ProjectID:        c.ProjectID,
		CustomerID:       c.CustomerID,
		ContractorID:     c.ContractorID,
		Status:           string(escrow.NormalizeCaseStatus(string(c.Status))),
		Bucket:           string(escrow.ClassifyCase(c)),
		Reason:           c.Reason,
		HeldAmountCents:  c.HeldAmountCents,
		ResolutionDocURL: c.ResolutionDocURL,
		ResolutionAction: string(c.ResolutionAction),
		Outcome:          c.Outcome,
		Version:          c.Version,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromCases(cases []entities.DisputeCase) []CaseResponse {
	out := make([]CaseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, FromCase(c))
	}
	return out
}

type ResolutionResponse struct {
	Case        CaseResponse            `json:"case"`
	Project     ProjectResponse         `json:"project"`
	Payout      escrow.ReleaseBreakdown `json:"payout"`
	RefundCents int64                   `json:"refund_cents"`
}
