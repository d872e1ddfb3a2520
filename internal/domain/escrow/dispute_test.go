package escrow

import (
	"errors"
	"math"
	"testing"

	"contractor_escrow/internal/domain/entities"
)

func TestComputeOutcome_Reconciles(t *testing.T) {
	actions := []entities.DisputeAction{entities.DisputeActionRelease, entities.DisputeActionRefund, entities.DisputeActionSplit}
	amounts := []int64{0, 1, 2, 3, 999, 1000, 1001, 320000, math.MaxInt64}
	for held := int64(0); held <= 2500; held++ {
		amounts = append(amounts, held)
	}
	for _, held := range amounts {
		for _, action := range actions {
			o, err := ComputeOutcome(held, action, "", "case-doc")
			if err != nil {
				t.Fatalf("held=%d action=%s: %v", held, action, err)
			}
			if o.ReleaseToContractorCents+o.RefundToCustomerCents != held {
				t.Fatalf("held=%d action=%s does not reconcile: %+v", held, action, o)
			}
			if action == entities.DisputeActionSplit && o.ReleaseToContractorCents != held/2 {
				t.Fatalf("held=%d split release must be floor(held/2), got %d", held, o.ReleaseToContractorCents)
			}
		}
	}
}

func TestComputeOutcome_Split(t *testing.T) {
	cases := []struct {
		held, release, refund int64
	}{
		{held: 999, release: 499, refund: 500},
		{held: 1000, release: 500, refund: 500},
		{held: 1, release: 0, refund: 1},
		{held: 0, release: 0, refund: 0},
		{held: 320000, release: 160000, refund: 160000},
	}
	for _, tc := range cases {
		o, err := ComputeOutcome(tc.held, entities.DisputeActionSplit, "", "ref")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ReleaseToContractorCents != tc.release || o.RefundToCustomerCents != tc.refund || o.OutcomeType != entities.OutcomeReleasePartial {
			t.Fatalf("held=%d: unexpected outcome %+v", tc.held, o)
		}
	}
}

func TestComputeOutcome_Scenario(t *testing.T) {
	refund, err := ComputeOutcome(320000, entities.DisputeActionRefund, "", "ref")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refund.ReleaseToContractorCents != 0 || refund.RefundToCustomerCents != 320000 || refund.OutcomeType != entities.OutcomeRefundFull {
		t.Fatalf("unexpected refund outcome: %+v", refund)
	}

	release, _ := ComputeOutcome(320000, entities.DisputeActionRelease, " s3://docs/case-1.pdf ", "ref")
	if release.ReleaseToContractorCents != 320000 || release.OutcomeType != entities.OutcomeReleaseFull {
		t.Fatalf("unexpected release outcome: %+v", release)
	}
	if release.DocReference != "s3://docs/case-1.pdf" {
		t.Fatalf("document url should win over default, got %q", release.DocReference)
	}
	if refund.DocReference != "ref" {
		t.Fatalf("expected default doc reference, got %q", refund.DocReference)
	}
}

func TestComputeOutcome_Edges(t *testing.T) {
	o, err := ComputeOutcome(-50, entities.DisputeActionRelease, "", "ref")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.HeldAmountCents != 0 || o.ReleaseToContractorCents != 0 {
		t.Fatalf("negative held must normalize to zero: %+v", o)
	}
	if _, err := ComputeOutcome(100, entities.DisputeAction("coinflip"), "", "ref"); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestNormalizeHeldAmount(t *testing.T) {
	cases := map[float64]int64{12.9: 12, 0: 0, -3.5: 0, 320000: 320000}
	for in, want := range cases {
		if got := NormalizeHeldAmount(in); got != want {
			t.Fatalf("%v: expected %d, got %d", in, want, got)
		}
	}
	if NormalizeHeldAmount(math.NaN()) != 0 {
		t.Fatalf("NaN must normalize to zero")
	}
}

func TestCheckOutcome(t *testing.T) {
	if err := CheckOutcome(entities.DisputeOutcome{HeldAmountCents: 10, ReleaseToContractorCents: 4, RefundToCustomerCents: 5}); !errors.Is(err, ErrOutcomeInvariant) {
		t.Fatalf("expected ErrOutcomeInvariant, got %v", err)
	}
	if err := CheckOutcome(entities.DisputeOutcome{HeldAmountCents: 0, ReleaseToContractorCents: -1, RefundToCustomerCents: 1}); !errors.Is(err, ErrOutcomeInvariant) {
		t.Fatalf("expected ErrOutcomeInvariant for negative side, got %v", err)
	}
}

func TestParseDisputeAction(t *testing.T) {
	if a, err := ParseDisputeAction(" Split "); err != nil || a != entities.DisputeActionSplit {
		t.Fatalf("unexpected result %q %v", a, err)
	}
	if _, err := ParseDisputeAction("halve"); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestExecutedStateFor(t *testing.T) {
	want := map[entities.OutcomeType]entities.EscrowState{
		entities.OutcomeReleaseFull:    entities.EscrowStateExecutedReleaseFull,
		entities.OutcomeReleasePartial: entities.EscrowStateExecutedReleasePartial,
		entities.OutcomeRefundPartial:  entities.EscrowStateExecutedRefundPartial,
		entities.OutcomeRefundFull:     entities.EscrowStateExecutedRefundFull,
	}
	for outcome, state := range want {
		got, err := ExecutedStateFor(outcome)
		if err != nil || got != state {
			t.Fatalf("%s: expected %s, got %s (%v)", outcome, state, got, err)
		}
	}
	if _, err := ExecutedStateFor("release_some"); !errors.Is(err, ErrInvalidOutcomeType) {
		t.Fatalf("expected ErrInvalidOutcomeType, got %v", err)
	}
}

func TestClassifyCase(t *testing.T) {
	cases := []struct {
		c    entities.DisputeCase
		want entities.CaseBucket
	}{
		{c: entities.DisputeCase{Status: "OPEN"}, want: entities.CaseBucketOpen},
		{c: entities.DisputeCase{Status: "admin_attention_required"}, want: entities.CaseBucketOpen},
		{c: entities.DisputeCase{Status: "WAITING_JOINT_RELEASE"}, want: entities.CaseBucketPending},
		{c: entities.DisputeCase{Status: "WAITING_EXTERNAL_RESOLUTION"}, want: entities.CaseBucketPending},
		{c: entities.DisputeCase{Status: " resolution_submitted "}, want: entities.CaseBucketPending},
		{c: entities.DisputeCase{Status: "PENDING_RESOLUTION"}, want: entities.CaseBucketPending},
		{c: entities.DisputeCase{Status: "RESOLVED"}, want: entities.CaseBucketResolved},
		{c: entities.DisputeCase{Status: "CLOSED"}, want: entities.CaseBucketResolved},
		{c: entities.DisputeCase{Status: "ESCALATED_TO_MARS"}, want: entities.CaseBucketOpen},
		{c: entities.DisputeCase{Status: ""}, want: entities.CaseBucketOpen},
		{c: entities.DisputeCase{Status: "OPEN", ResolutionAction: entities.DisputeActionRefund}, want: entities.CaseBucketResolved},
	}
	for _, tc := range cases {
		if got := ClassifyCase(tc.c); got != tc.want {
			t.Fatalf("status %q: expected %s, got %s", tc.c.Status, tc.want, got)
		}
	}
	if NormalizeCaseStatus("whatever") != entities.CaseStatusUnknown {
		t.Fatalf("unknown statuses must normalize to UNKNOWN")
	}
}

func TestSummarizeCases(t *testing.T) {
	s := SummarizeCases([]entities.DisputeCase{
		{Status: "OPEN", HeldAmountCents: 100},
		{Status: "mystery", HeldAmountCents: 50},
		{Status: "PENDING_RESOLUTION", HeldAmountCents: 10},
		{Status: "RESOLVED", HeldAmountCents: 1000},
	})
	if s.Open != 2 || s.Pending != 1 || s.Resolved != 1 || s.UnsettledHeldCents != 160 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestSettle(t *testing.T) {
	o, _ := ComputeOutcome(320000, entities.DisputeActionSplit, "", "ref")
	payout, refund := Settle(o, DefaultFeeSchedule())
	if refund != 160000 {
		t.Fatalf("refund side must not carry a fee, got %d", refund)
	}
	if payout.GrossCents != 160000 || payout.FeeCents != 11200 || payout.NetCents != 148800 {
		t.Fatalf("unexpected payout: %+v", payout)
	}
}
