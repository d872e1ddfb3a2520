package entities

import "time"

// SettlementKind distinguishes the source of a fund movement instruction.
type SettlementKind string

const (
	SettlementKindCompletionRelease SettlementKind = "completion_release"
	SettlementKindDisputeOutcome    SettlementKind = "dispute_outcome"
	SettlementKindDepositRefund     SettlementKind = "deposit_refund"
	// SettlementKindChargeRefund returns an approved charge that could not be attached to
	// its project or deposit.
	SettlementKindChargeRefund SettlementKind = "charge_refund"
)

// Settlement is an opaque fund movement instruction recorded for the external executor.
//
// IdempotencyKey is unique; recording the same key twice is rejected.
type Settlement struct {
	IdempotencyKey        string         `json:"idempotency_key"`
	Kind                  SettlementKind `json:"kind"`
	ProjectID             string         `json:"project_id"`
	CaseID                string         `json:"case_id,omitempty"`
	OutcomeType           OutcomeType    `json:"outcome_type,omitempty"`
	ContractorPayoutCents int64          `json:"contractor_payout_cents"`
	PlatformFeeCents      int64          `json:"platform_fee_cents"`
	CustomerRefundCents   int64          `json:"customer_refund_cents"`
	DocReference          string         `json:"doc_reference,omitempty"`
	CreatedAt             time.Time      `json:"created_at"`
}
