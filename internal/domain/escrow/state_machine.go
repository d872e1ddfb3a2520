package escrow

import (
	"fmt"
	"strings"

	"contractor_escrow/internal/domain/entities"
)

var transitions = map[entities.EscrowState][]entities.EscrowState{
	entities.EscrowStateDraft: {
		entities.EscrowStateOpenForQuotes,
		entities.EscrowStateCancelled,
	},
	entities.EscrowStateOpenForQuotes: {
		entities.EscrowStateContractorSelected,
		entities.EscrowStateClosed,
		entities.EscrowStateCancelled,
	},
	entities.EscrowStateContractorSelected: {
		entities.EscrowStateAgreementAccepted,
		entities.EscrowStateCancelled,
	},
	entities.EscrowStateAgreementAccepted: {
		entities.EscrowStateFundedHeld,
		entities.EscrowStateCancelled,
	},
	entities.EscrowStateFundedHeld: {
		entities.EscrowStateInProgress,
		entities.EscrowStateCompletionRequested,
	},
	entities.EscrowStateInProgress: {
		entities.EscrowStateCompletionRequested,
	},
	entities.EscrowStateCompletionRequested: {
		entities.EscrowStateApprovedForRelease,
		entities.EscrowStateIssueRaisedHold,
	},
	// Approval commits the release; a dispute can only be raised before it.
	entities.EscrowStateApprovedForRelease: {
		entities.EscrowStateReleasedPaid,
	},
	entities.EscrowStateIssueRaisedHold: {
		entities.EscrowStateResolutionPendingExternal,
		entities.EscrowStateResolutionSubmitted,
	},
	entities.EscrowStateResolutionPendingExternal: {
		entities.EscrowStateResolutionSubmitted,
	},
	entities.EscrowStateResolutionSubmitted: {
		entities.EscrowStateExecutedReleaseFull,
		entities.EscrowStateExecutedReleasePartial,
		entities.EscrowStateExecutedRefundPartial,
		entities.EscrowStateExecutedRefundFull,
	},
}

// CanTransition reports whether the lifecycle allows moving from one state to another.
func CanTransition(from, to entities.EscrowState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStates lists the states reachable in one step from s.
func NextStates(s entities.EscrowState) []entities.EscrowState {
	out := make([]entities.EscrowState, len(transitions[s]))
	copy(out, transitions[s])
	return out
}

func IsTerminal(s entities.EscrowState) bool {
	switch s {
	case entities.EscrowStateReleasedPaid,
		entities.EscrowStateExecutedReleaseFull,
		entities.EscrowStateExecutedReleasePartial,
		entities.EscrowStateExecutedRefundPartial,
		entities.EscrowStateExecutedRefundFull,
		entities.EscrowStateClosed,
		entities.EscrowStateCancelled:
		return true
	}
	return false
}

// IsDisputeState reports whether s belongs to the open dispute branch.
func IsDisputeState(s entities.EscrowState) bool {
	switch s {
	case entities.EscrowStateIssueRaisedHold,
		entities.EscrowStateResolutionPendingExternal,
		entities.EscrowStateResolutionSubmitted:
		return true
	}
	return false
}

// HoldsFunds reports whether a project in s has a defined held amount.
func HoldsFunds(s entities.EscrowState) bool {
	switch s {
	case entities.EscrowStateDraft,
		entities.EscrowStateOpenForQuotes,
		entities.EscrowStateContractorSelected,
		entities.EscrowStateAgreementAccepted,
		entities.EscrowStateClosed,
		entities.EscrowStateCancelled:
		return false
	}
	return s.Valid()
}

// ProgressStep maps a state onto the six-step client progress indicator.
//
// Dispute states map to step 5: they are not settled. Step 6 is reserved for settled
// outcomes, so CLOSED and CANCELLED, where no money moved, report 0 like DRAFT.
func ProgressStep(s entities.EscrowState) int {
	switch s {
	case entities.EscrowStateDraft:
		return 0
	case entities.EscrowStateOpenForQuotes:
		return 1
	case entities.EscrowStateContractorSelected:
		return 2
	case entities.EscrowStateAgreementAccepted:
		return 3
	case entities.EscrowStateFundedHeld, entities.EscrowStateInProgress:
		return 4
	case entities.EscrowStateCompletionRequested,
		entities.EscrowStateApprovedForRelease,
		entities.EscrowStateIssueRaisedHold,
		entities.EscrowStateResolutionPendingExternal,
		entities.EscrowStateResolutionSubmitted:
		return 5
	case entities.EscrowStateReleasedPaid,
		entities.EscrowStateExecutedReleaseFull,
		entities.EscrowStateExecutedReleasePartial,
		entities.EscrowStateExecutedRefundPartial,
		entities.EscrowStateExecutedRefundFull:
		return 6
	}
	return 0
}

func transition(p entities.Project, to entities.EscrowState) (entities.Project, error) {
	if !CanTransition(p.EscrowState, to) {
		return p, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.EscrowState, to)
	}
	p.EscrowState = to
	return p, nil
}

func isCustomer(p entities.Project, actor entities.Actor) bool {
	return actor.Role == entities.RoleCustomer && actor.ID != "" && actor.ID == p.CustomerID
}

func isSelectedContractor(p entities.Project, actor entities.Actor) bool {
	return actor.Role == entities.RoleContractor && actor.ID != "" && actor.ID == p.ContractorID
}

// PublishProject opens a draft for quotes.
func PublishProject(p entities.Project, actor entities.Actor) (entities.Project, error) {
	if !isCustomer(p, actor) {
		return p, ErrCustomerOnly
	}
	return transition(p, entities.EscrowStateOpenForQuotes)
}

// SelectContractor accepts quoteID and rejects every other quote of the project.
// At least one quote must still be pending, and the selected one must be among them.
func SelectContractor(p entities.Project, quotes []entities.Quote, quoteID string, actor entities.Actor) (entities.Project, []entities.Quote, error) {
	if !isCustomer(p, actor) {
		return p, quotes, ErrCustomerOnly
	}
	if !CanTransition(p.EscrowState, entities.EscrowStateContractorSelected) {
		return p, quotes, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.EscrowState, entities.EscrowStateContractorSelected)
	}

	pending := 0
	selected := -1
	for i, q := range quotes {
		if q.ProjectID != p.ID {
			continue
		}
		if q.Status == entities.QuoteStatusPending {
			pending++
		}
		if q.ID == quoteID {
			selected = i
		}
	}
	if pending == 0 {
		return p, quotes, ErrNoPendingQuotes
	}
	if selected < 0 {
		return p, quotes, ErrQuoteNotFound
	}
	if quotes[selected].Status != entities.QuoteStatusPending {
		return p, quotes, ErrQuoteNotPending
	}

	updated := make([]entities.Quote, len(quotes))
	for i, q := range quotes {
		if q.ProjectID == p.ID {
			if i == selected {
				q.Status = entities.QuoteStatusAccepted
			} else {
				q.Status = entities.QuoteStatusRejected
			}
		}
		updated[i] = q
	}

	p.EscrowState = entities.EscrowStateContractorSelected
	p.ContractorID = quotes[selected].ContractorID
	p.SelectedQuoteID = quotes[selected].ID
	return p, updated, nil
}

// AcceptAgreement records the selected contractor's acceptance of the job terms.
func AcceptAgreement(p entities.Project, actor entities.Actor) (entities.Project, error) {
	if !isSelectedContractor(p, actor) {
		return p, ErrContractorOnly
	}
	return transition(p, entities.EscrowStateAgreementAccepted)
}

// FundingConfirmation is the payment boundary's answer to a funding charge.
type FundingConfirmation struct {
	Approved  bool
	PaymentID string
}

// ConfirmFunding moves an accepted agreement into FUNDED_HELD and fixes the held amount
// to the accepted quote's price.
func ConfirmFunding(p entities.Project, accepted entities.Quote, conf FundingConfirmation) (entities.Project, error) {
	if !CanTransition(p.EscrowState, entities.EscrowStateFundedHeld) {
		return p, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.EscrowState, entities.EscrowStateFundedHeld)
	}
	if accepted.ID == "" || accepted.ID != p.SelectedQuoteID || accepted.Status != entities.QuoteStatusAccepted {
		return p, ErrQuoteNotAccepted
	}
	if accepted.PriceCents <= 0 {
		return p, ErrInvalidAmount
	}
	if !conf.Approved {
		return p, ErrFundingNotConfirmed
	}
	held := accepted.PriceCents
	p.EscrowState = entities.EscrowStateFundedHeld
	p.HeldAmountCents = &held
	p.FundingPaymentID = conf.PaymentID
	return p, nil
}

func StartWork(p entities.Project, actor entities.Actor) (entities.Project, error) {
	if !isSelectedContractor(p, actor) {
		return p, ErrContractorOnly
	}
	return transition(p, entities.EscrowStateInProgress)
}

func RequestCompletion(p entities.Project, actor entities.Actor) (entities.Project, error) {
	if !isSelectedContractor(p, actor) {
		return p, ErrContractorOnly
	}
	return transition(p, entities.EscrowStateCompletionRequested)
}

// ApproveCompletion is the customer's sign-off. Funds are released by ReleasePayment.
func ApproveCompletion(p entities.Project, actor entities.Actor) (entities.Project, error) {
	if !isCustomer(p, actor) {
		return p, ErrCustomerOnly
	}
	return transition(p, entities.EscrowStateApprovedForRelease)
}

// ReleasePayment releases the full held amount to the contractor, fee subtracted.
func ReleasePayment(p entities.Project, schedule FeeSchedule) (entities.Project, ReleaseBreakdown, error) {
	next, err := transition(p, entities.EscrowStateReleasedPaid)
	if err != nil {
		return p, ReleaseBreakdown{}, err
	}
	return next, Payout(p.Held(), schedule), nil
}

// MinIssueReasonLength is the shortest accepted dispute reason, in characters.
const MinIssueReasonLength = 5

// RaiseIssue freezes the held funds and opens the dispute branch.
func RaiseIssue(p entities.Project, actor entities.Actor, reason string) (entities.Project, error) {
	if !isCustomer(p, actor) {
		return p, ErrCustomerOnly
	}
	if len([]rune(strings.TrimSpace(reason))) < MinIssueReasonLength {
		return p, ErrInvalidReason
	}
	return transition(p, entities.EscrowStateIssueRaisedHold)
}

// AwaitExternalResolution parks a dispute while an outside party decides.
func AwaitExternalResolution(p entities.Project) (entities.Project, error) {
	return transition(p, entities.EscrowStateResolutionPendingExternal)
}

// SubmitResolution claims a dispute for execution.
func SubmitResolution(p entities.Project) (entities.Project, error) {
	if !IsDisputeState(p.EscrowState) {
		return p, ErrProjectNotInDispute
	}
	return transition(p, entities.EscrowStateResolutionSubmitted)
}

// ExecuteOutcome moves a submitted resolution into its EXECUTED_* state.
func ExecuteOutcome(p entities.Project, outcome entities.DisputeOutcome) (entities.Project, error) {
	if err := CheckOutcome(outcome); err != nil {
		return p, err
	}
	if outcome.HeldAmountCents != p.Held() {
		return p, fmt.Errorf("%w: outcome held %d, project held %d", ErrOutcomeInvariant, outcome.HeldAmountCents, p.Held())
	}
	to, err := ExecutedStateFor(outcome.OutcomeType)
	if err != nil {
		return p, err
	}
	return transition(p, to)
}

// CancelProject terminates a project before funds are held. Admins may cancel on behalf of the customer.
func CancelProject(p entities.Project, actor entities.Actor) (entities.Project, error) {
	if !isCustomer(p, actor) && actor.Role != entities.RoleAdmin {
		return p, ErrCustomerOnly
	}
	return transition(p, entities.EscrowStateCancelled)
}

// CloseProject withdraws a posting that is still collecting quotes.
func CloseProject(p entities.Project, actor entities.Actor) (entities.Project, error) {
	if !isCustomer(p, actor) && actor.Role != entities.RoleAdmin {
		return p, ErrCustomerOnly
	}
	return transition(p, entities.EscrowStateClosed)
}
