package entities

import "time"

// CaseStatus is the raw admin case status. Unknown values normalize to CaseStatusUnknown.
type CaseStatus string

const (
	CaseStatusOpen                      CaseStatus = "OPEN"
	CaseStatusAdminAttentionRequired    CaseStatus = "ADMIN_ATTENTION_REQUIRED"
	CaseStatusWaitingJointRelease       CaseStatus = "WAITING_JOINT_RELEASE"
	CaseStatusWaitingExternalResolution CaseStatus = "WAITING_EXTERNAL_RESOLUTION"
	CaseStatusResolutionSubmitted       CaseStatus = "RESOLUTION_SUBMITTED"
	CaseStatusPendingResolution         CaseStatus = "PENDING_RESOLUTION"
	CaseStatusResolved                  CaseStatus = "RESOLVED"
	CaseStatusClosed                    CaseStatus = "CLOSED"
	CaseStatusUnknown                   CaseStatus = "UNKNOWN"
)

// CaseBucket groups case statuses for admin summaries.
type CaseBucket string

const (
	CaseBucketOpen     CaseBucket = "open"
	CaseBucketPending  CaseBucket = "pending"
	CaseBucketResolved CaseBucket = "resolved"
)

// DisputeAction is the admin decision applied to a disputed hold.
type DisputeAction string

const (
	DisputeActionRelease DisputeAction = "release"
	DisputeActionRefund  DisputeAction = "refund"
	DisputeActionSplit   DisputeAction = "split"
)

// OutcomeType is the settlement shape of a resolved dispute.
type OutcomeType string

const (
	OutcomeReleaseFull    OutcomeType = "release_full"
	OutcomeRefundFull     OutcomeType = "refund_full"
	OutcomeReleasePartial OutcomeType = "release_partial"
	OutcomeRefundPartial  OutcomeType = "refund_partial"
)

// DisputeOutcome is the instruction handed to the settlement executor.
//
// ReleaseToContractorCents + RefundToCustomerCents always equals HeldAmountCents.
type DisputeOutcome struct {
	OutcomeType              OutcomeType `json:"outcome_type"`
	HeldAmountCents          int64       `json:"held_amount_cents"`
	ReleaseToContractorCents int64       `json:"release_to_contractor_cents"`
	RefundToCustomerCents    int64       `json:"refund_to_customer_cents"`
	DocReference             string      `json:"doc_reference"`
}

// DisputeCase is the admin-facing record of a disputed project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// Version is incremented on every write and checked on conditional updates.
type DisputeCase struct {
	ID               string          `json:"id"`
	ProjectID        string          `json:"project_id"`
	CustomerID       string          `json:"customer_id"`
	ContractorID     string          `json:"contractor_id"`
	Status           CaseStatus      `json:"status"`
	Reason           string          `json:"reason"`
	HeldAmountCents  int64           `json:"held_amount_cents"`
	ResolutionDocURL string          `json:"resolution_doc_url,omitempty"`
	ResolutionAction DisputeAction   `json:"resolution_action,omitempty"`
	Outcome          *DisputeOutcome `json:"outcome,omitempty"`
	ResolvedBy       string          `json:"resolved_by,omitempty"`
	Version          int64           `json:"version"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
