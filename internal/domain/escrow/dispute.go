package escrow

import (
	"fmt"
	"math"
	"strings"

	"contractor_escrow/internal/domain/entities"
)

// NormalizeHeldAmount converts a raw amount to whole non-negative cents: max(0, floor(amount)).
func NormalizeHeldAmount(amount float64) int64 {
	if math.IsNaN(amount) || amount <= 0 {
		return 0
	}
	if amount >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Floor(amount))
}

// ComputeOutcome builds the settlement instruction for a dispute action.
//
// A split gives floor(held/2) to the contractor and the remainder cent, if any, to the customer.
// docURL wins over defaultDocRef when set. The returned outcome always reconciles with held.
func ComputeOutcome(heldAmountCents int64, action entities.DisputeAction, docURL, defaultDocRef string) (entities.DisputeOutcome, error) {
	held := heldAmountCents
	if held < 0 {
		held = 0
	}

	out := entities.DisputeOutcome{HeldAmountCents: held, DocReference: strings.TrimSpace(docURL)}
	if out.DocReference == "" {
		out.DocReference = defaultDocRef
	}

	switch action {
	case entities.DisputeActionRelease:
		out.OutcomeType = entities.OutcomeReleaseFull
		out.ReleaseToContractorCents = held
	case entities.DisputeActionRefund:
		out.OutcomeType = entities.OutcomeRefundFull
		out.RefundToCustomerCents = held
	case entities.DisputeActionSplit:
		out.OutcomeType = entities.OutcomeReleasePartial
		out.ReleaseToContractorCents = held / 2
		out.RefundToCustomerCents = held - out.ReleaseToContractorCents
	default:
		return entities.DisputeOutcome{}, ErrInvalidAction
	}

	if err := CheckOutcome(out); err != nil {
		return entities.DisputeOutcome{}, err
	}
	return out, nil
}

// CheckOutcome verifies that both sides are non-negative and add up to the held amount.
func CheckOutcome(o entities.DisputeOutcome) error {
	if o.ReleaseToContractorCents < 0 || o.RefundToCustomerCents < 0 ||
		o.ReleaseToContractorCents+o.RefundToCustomerCents != o.HeldAmountCents {
		return fmt.Errorf("%w: release %d + refund %d != held %d", ErrOutcomeInvariant,
			o.ReleaseToContractorCents, o.RefundToCustomerCents, o.HeldAmountCents)
	}
	return nil
}

func ParseDisputeAction(raw string) (entities.DisputeAction, error) {
	switch a := entities.DisputeAction(strings.ToLower(strings.TrimSpace(raw))); a {
	case entities.DisputeActionRelease, entities.DisputeActionRefund, entities.DisputeActionSplit:
		return a, nil
	}
	return "", ErrInvalidAction
}

// ExecutedStateFor maps an outcome type onto its terminal escrow state.
func ExecutedStateFor(t entities.OutcomeType) (entities.EscrowState, error) {
	switch t {
	case entities.OutcomeReleaseFull:
		return entities.EscrowStateExecutedReleaseFull, nil
	case entities.OutcomeReleasePartial:
		return entities.EscrowStateExecutedReleasePartial, nil
	case entities.OutcomeRefundPartial:
		return entities.EscrowStateExecutedRefundPartial, nil
	case entities.OutcomeRefundFull:
		return entities.EscrowStateExecutedRefundFull, nil
	}
	return "", ErrInvalidOutcomeType
}

// NormalizeCaseStatus upper-cases and trims a raw status; anything unrecognized becomes UNKNOWN.
func NormalizeCaseStatus(raw string) entities.CaseStatus {
	switch s := entities.CaseStatus(strings.ToUpper(strings.TrimSpace(raw))); s {
	case entities.CaseStatusOpen,
		entities.CaseStatusAdminAttentionRequired,
		entities.CaseStatusWaitingJointRelease,
		entities.CaseStatusWaitingExternalResolution,
		entities.CaseStatusResolutionSubmitted,
		entities.CaseStatusPendingResolution,
		entities.CaseStatusResolved,
		entities.CaseStatusClosed:
		return s
	}
	return entities.CaseStatusUnknown
}

// ClassifyCase buckets a case for admin summaries. A recorded resolution always wins,
// and unknown statuses fall into open so they still get admin attention.
func ClassifyCase(c entities.DisputeCase) entities.CaseBucket {
	if c.ResolutionAction != "" || c.Outcome != nil {
		return entities.CaseBucketResolved
	}
	switch NormalizeCaseStatus(string(c.Status)) {
	case entities.CaseStatusWaitingJointRelease,
		entities.CaseStatusWaitingExternalResolution,
		entities.CaseStatusResolutionSubmitted,
		entities.CaseStatusPendingResolution:
		return entities.CaseBucketPending
	case entities.CaseStatusResolved, entities.CaseStatusClosed:
		return entities.CaseBucketResolved
	}
	return entities.CaseBucketOpen
}

// CaseSummary aggregates cases per bucket.
type CaseSummary struct {
	Open               int   `json:"open"`
	Pending            int   `json:"pending"`
	Resolved           int   `json:"resolved"`
	UnsettledHeldCents int64 `json:"unsettled_held_cents"`
}

func SummarizeCases(cases []entities.DisputeCase) CaseSummary {
	var s CaseSummary
	for _, c := range cases {
		switch ClassifyCase(c) {
		case entities.CaseBucketOpen:
			s.Open++
			s.UnsettledHeldCents += c.HeldAmountCents
		case entities.CaseBucketPending:
			s.Pending++
			s.UnsettledHeldCents += c.HeldAmountCents
		case entities.CaseBucketResolved:
			s.Resolved++
		}
	}
	return s
}

// Settle turns an outcome into a fund movement instruction, applying the fee to the release side only.
func Settle(o entities.DisputeOutcome, schedule FeeSchedule) (ReleaseBreakdown, int64) {
	return Payout(o.ReleaseToContractorCents, schedule), o.RefundToCustomerCents
}
