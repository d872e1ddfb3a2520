package response

import (
	"time"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/domain/escrow"
)

type ProjectResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	ContractorID    string    `json:"contractor_id,omitempty"`
	Category        string    `json:"category"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	EscrowState     string    `json:"escrow_state"`
	ProgressStep    int       `json:"progress_step"`
	Terminal        bool      `json:"terminal"`
	NextStates      []string  `json:"next_states"`
	HeldAmountCents *int64    `json:"held_amount_cents,omitempty"`
	SelectedQuoteID string    `json:"selected_quote_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:              p.ID,
		CustomerID:      p.CustomerID,
		ContractorID:    p.ContractorID,
		Category:        p.Category,
		Title:           p.Title,
		Description:     p.Description,
		EscrowState:     string(p.EscrowState),
		ProgressStep:    escrow.ProgressStep(p.EscrowState),
		Terminal:        escrow.IsTerminal(p.EscrowState),
		NextStates:      nextStates(p.EscrowState),
		HeldAmountCents: p.HeldAmountCents,
		SelectedQuoteID: p.SelectedQuoteID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// nextStates lists the lifecycle moves still open to the project; never nil, so clients get [].
func nextStates(s entities.EscrowState) []string {
	next := escrow.NextStates(s)
	out := make([]string, 0, len(next))
	for _, n := range next {
		out = append(out, string(n))
	}
	return out
}

type QuoteResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	ContractorID string    `json:"contractor_id"`
	PriceCents   int64     `json:"price_cents"`
	Message      string    `json:"message,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		ProjectID:    q.ProjectID,
		ContractorID: q.ContractorID,
		PriceCents:   q.PriceCents,
		Message:      q.Message,
		Status:       string(q.Status),
		CreatedAt:    q.CreatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// ReleaseResponse is returned when a customer approves completion.
type ReleaseResponse struct {
	Project ProjectResponse         `json:"project"`
	Payout  escrow.ReleaseBreakdown `json:"payout"`
}

type IssueResponse struct {
	Project ProjectResponse `json:"project"`
	Case    CaseResponse    `json:"case"`
}
