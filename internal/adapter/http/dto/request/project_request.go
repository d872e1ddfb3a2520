package request

import "strings"

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
}

type SubmitQuoteRequest struct {
	PriceCents int64  `json:"price_cents" binding:"required,gt=0"`
	Message    string `json:"message"`
}

// RaiseIssueRequest opens a dispute. The reason is checked again after trimming.
type RaiseIssueRequest struct {
	Reason string `json:"reason" binding:"required,min=5"`
}

func (r RaiseIssueRequest) TrimmedReason() string {
	return strings.TrimSpace(r.Reason)
}
