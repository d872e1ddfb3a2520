package entities

import "time"

// EscrowState is the canonical project lifecycle state.
//
// The string values are consumed by web, mobile and admin clients and must not change.
type EscrowState string

const (
	EscrowStateDraft                     EscrowState = "DRAFT"
	EscrowStateOpenForQuotes             EscrowState = "OPEN_FOR_QUOTES"
	EscrowStateContractorSelected        EscrowState = "CONTRACTOR_SELECTED"
	EscrowStateAgreementAccepted         EscrowState = "AGREEMENT_ACCEPTED"
	EscrowStateFundedHeld                EscrowState = "FUNDED_HELD"
	EscrowStateInProgress                EscrowState = "IN_PROGRESS"
	EscrowStateCompletionRequested       EscrowState = "COMPLETION_REQUESTED"
	EscrowStateApprovedForRelease        EscrowState = "APPROVED_FOR_RELEASE"
	EscrowStateReleasedPaid              EscrowState = "RELEASED_PAID"
	EscrowStateIssueRaisedHold           EscrowState = "ISSUE_RAISED_HOLD"
	EscrowStateResolutionPendingExternal EscrowState = "RESOLUTION_PENDING_EXTERNAL"
	EscrowStateResolutionSubmitted       EscrowState = "RESOLUTION_SUBMITTED"
	EscrowStateExecutedReleaseFull       EscrowState = "EXECUTED_RELEASE_FULL"
	EscrowStateExecutedReleasePartial    EscrowState = "EXECUTED_RELEASE_PARTIAL"
	EscrowStateExecutedRefundPartial     EscrowState = "EXECUTED_REFUND_PARTIAL"
	EscrowStateExecutedRefundFull        EscrowState = "EXECUTED_REFUND_FULL"
	EscrowStateClosed                    EscrowState = "CLOSED"
	EscrowStateCancelled                 EscrowState = "CANCELLED"
)

// AllEscrowStates lists every state in lifecycle order.
var AllEscrowStates = []EscrowState{
	EscrowStateDraft,
	EscrowStateOpenForQuotes,
	EscrowStateContractorSelected,
	EscrowStateAgreementAccepted,
	EscrowStateFundedHeld,
	EscrowStateInProgress,
	EscrowStateCompletionRequested,
	EscrowStateApprovedForRelease,
	EscrowStateReleasedPaid,
	EscrowStateIssueRaisedHold,
	EscrowStateResolutionPendingExternal,
	EscrowStateResolutionSubmitted,
	EscrowStateExecutedReleaseFull,
	EscrowStateExecutedReleasePartial,
	EscrowStateExecutedRefundPartial,
	EscrowStateExecutedRefundFull,
	EscrowStateClosed,
	EscrowStateCancelled,
}

func (s EscrowState) Valid() bool {
	for _, known := range AllEscrowStates {
		if s == known {
			return true
		}
	}
	return false
}

// Project is a customer's job posting moving through the escrow lifecycle.
//
// Storage model (DynamoDB):
//   - PK: id
//
// HeldAmountCents is nil until the project reaches FUNDED_HELD and is never cleared afterwards.
// ContractorID and SelectedQuoteID are empty until a quote is accepted.
type Project struct {
	ID               string      `json:"id"`
	CustomerID       string      `json:"customer_id"`
	ContractorID     string      `json:"contractor_id,omitempty"`
	Category         string      `json:"category"`
	Title            string      `json:"title"`
	Description      string      `json:"description,omitempty"`
	EscrowState      EscrowState `json:"escrow_state"`
	HeldAmountCents  *int64      `json:"held_amount_cents,omitempty"`
	SelectedQuoteID  string      `json:"selected_quote_id,omitempty"`
	FundingPaymentID string      `json:"funding_payment_id,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// Held returns the held amount, or zero when the project is not funded.
func (p Project) Held() int64 {
	if p.HeldAmountCents == nil {
		return 0
	}
	return *p.HeldAmountCents
}

func (p Project) HasContractor() bool {
	return p.ContractorID != ""
}
