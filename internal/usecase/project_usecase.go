package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/domain/escrow"
	"contractor_escrow/internal/infrastructure/metrics"
	"contractor_escrow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type CreateProjectInput struct {
	Title       string
	Description string
	Category    string
}

// IProjectUseCase drives a project through the escrow lifecycle.
//
// Every state change is persisted with a conditional write on the state that was read,
// so concurrent callers cannot both move the same project.
type IProjectUseCase interface {
	CreateProject(ctx context.Context, actor entities.Actor, in CreateProjectInput) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Publish(ctx context.Context, actor entities.Actor, id string) (entities.Project, error)
	SubmitQuote(ctx context.Context, actor entities.Actor, projectID string, priceCents int64, message string) (entities.Quote, error)
	ListQuotes(ctx context.Context, projectID string) ([]entities.Quote, error)
	SelectQuote(ctx context.Context, actor entities.Actor, projectID, quoteID string) (entities.Project, error)
	AcceptAgreement(ctx context.Context, actor entities.Actor, id string) (entities.Project, error)
	Fund(ctx context.Context, actor entities.Actor, id string, payload json.RawMessage) (entities.Project, error)
	StartWork(ctx context.Context, actor entities.Actor, id string) (entities.Project, error)
	RequestCompletion(ctx context.Context, actor entities.Actor, id string) (entities.Project, error)
	ApproveCompletion(ctx context.Context, actor entities.Actor, id string) (entities.Project, escrow.ReleaseBreakdown, error)
	RaiseIssue(ctx context.Context, actor entities.Actor, id, reason string) (entities.Project, entities.DisputeCase, error)
	Cancel(ctx context.Context, actor entities.Actor, id string) (entities.Project, error)
	Close(ctx context.Context, actor entities.Actor, id string) (entities.Project, error)
}

type ProjectUseCase struct {
	projects interfaces.IProjectRepository
	quotes   interfaces.IQuoteRepository
	deposits interfaces.IEstimateDepositRepository
	cases    interfaces.IDisputeCaseRepository
	ledger   interfaces.ISettlementLedger
	charger  paymentCharger
	policy   Policy
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	projects interfaces.IProjectRepository,
	quotes interfaces.IQuoteRepository,
	deposits interfaces.IEstimateDepositRepository,
	cases interfaces.IDisputeCaseRepository,
	ledger interfaces.ISettlementLedger,
	gateway interfaces.IPaymentGateway,
	policy Policy,
) *ProjectUseCase {
	return &ProjectUseCase{
		projects: projects,
		quotes:   quotes,
		deposits: deposits,
		cases:    cases,
		ledger:   ledger,
		charger:  paymentCharger{gateway: gateway, testPayerEmail: policy.TestPayerEmail},
		policy:   policy,
	}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, actor entities.Actor, in CreateProjectInput) (entities.Project, error) {
	if actor.Role != entities.RoleCustomer || strings.TrimSpace(actor.ID) == "" {
		return entities.Project{}, escrow.ErrCustomerOnly
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Project{}, ErrInvalidTitle
	}
	category := escrow.NormalizeCategory(in.Category)
	if _, ok := u.policy.Deposits.AmountsByCategory[category]; !ok {
		return entities.Project{}, ErrInvalidCategory
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:          uuid.NewString(),
		CustomerID:  actor.ID,
		Category:    category,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		EscrowState: entities.EscrowStateDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.projects.Create(ctx, p)
	if err != nil {
		log.Printf("[project][usecase] create failed customer_id=%s err=%v", actor.ID, err)
		return entities.Project{}, err
	}
	log.Printf("[project][usecase] created project_id=%s customer_id=%s category=%s", created.ID, created.CustomerID, created.Category)
	return created, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	return u.load(ctx, id)
}

func (u *ProjectUseCase) Publish(ctx context.Context, actor entities.Actor, id string) (entities.Project, error) {
	return u.apply(ctx, id, func(p entities.Project) (entities.Project, error) {
		return escrow.PublishProject(p, actor)
	})
}

func (u *ProjectUseCase) SubmitQuote(ctx context.Context, actor entities.Actor, projectID string, priceCents int64, message string) (entities.Quote, error) {
	if actor.Role != entities.RoleContractor || strings.TrimSpace(actor.ID) == "" {
		return entities.Quote{}, ErrForbidden
	}
	if priceCents <= 0 {
		return entities.Quote{}, escrow.ErrInvalidAmount
	}
	p, err := u.load(ctx, projectID)
	if err != nil {
		return entities.Quote{}, err
	}
	if p.EscrowState != entities.EscrowStateOpenForQuotes {
		return entities.Quote{}, escrow.ErrQuotesClosed
	}

	existing, err := u.quotes.ListByProjectID(ctx, p.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, q := range existing {
		if q.ContractorID == actor.ID && q.Status == entities.QuoteStatusPending {
			return entities.Quote{}, ErrQuoteAlreadyExist
		}
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:           uuid.NewString(),
		ProjectID:    p.ID,
		ContractorID: actor.ID,
		PriceCents:   priceCents,
		Message:      strings.TrimSpace(message),
		Status:       entities.QuoteStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[project][usecase] quote submitted project_id=%s quote_id=%s contractor_id=%s price_cents=%d", p.ID, created.ID, actor.ID, priceCents)
	return created, nil
}

func (u *ProjectUseCase) ListQuotes(ctx context.Context, projectID string) ([]entities.Quote, error) {
	p, err := u.load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return u.quotes.ListByProjectID(ctx, p.ID)
}

func (u *ProjectUseCase) SelectQuote(ctx context.Context, actor entities.Actor, projectID, quoteID string) (entities.Project, error) {
	p, err := u.load(ctx, projectID)
	if err != nil {
		return entities.Project{}, err
	}
	quotes, err := u.quotes.ListByProjectID(ctx, p.ID)
	if err != nil {
		return entities.Project{}, err
	}
	next, updated, err := escrow.SelectContractor(p, quotes, strings.TrimSpace(quoteID), actor)
	if err != nil {
		return entities.Project{}, err
	}

	// The project write is the claim: only one selection can move it out of OPEN_FOR_QUOTES.
	saved, err := u.persist(ctx, p, next)
	if err != nil {
		return entities.Project{}, err
	}
	if err := u.quotes.UpdateStatuses(ctx, updated); err != nil {
		log.Printf("[project][usecase] quote status update failed project_id=%s err=%v", p.ID, err)
		return entities.Project{}, err
	}
	return saved, nil
}

func (u *ProjectUseCase) AcceptAgreement(ctx context.Context, actor entities.Actor, id string) (entities.Project, error) {
	return u.apply(ctx, id, func(p entities.Project) (entities.Project, error) {
		return escrow.AcceptAgreement(p, actor)
	})
}

// Fund charges the customer for the accepted quote and holds it in escrow.
//
// An attended estimate deposit for the same contractor is credited against the charge;
// the held amount is always the full quote price.
func (u *ProjectUseCase) Fund(ctx context.Context, actor entities.Actor, id string, payload json.RawMessage) (entities.Project, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if actor.Role != entities.RoleCustomer || actor.ID != p.CustomerID {
		return entities.Project{}, escrow.ErrCustomerOnly
	}
	if !escrow.CanTransition(p.EscrowState, entities.EscrowStateFundedHeld) {
		return entities.Project{}, fmt.Errorf("%w: %s -> %s", escrow.ErrInvalidTransition, p.EscrowState, entities.EscrowStateFundedHeld)
	}

	accepted, err := u.acceptedQuote(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	credit, err := u.creditableDeposit(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}

	chargeCents := accepted.PriceCents
	if credit.ID != "" {
		chargeCents -= credit.AmountCents
		if chargeCents < 0 {
			chargeCents = 0
		}
	}

	conf := escrow.FundingConfirmation{Approved: true}
	if chargeCents > 0 {
		now := time.Now().UTC()
		token := uuid.NewString()
		if err := u.projects.Claim(ctx, p.ID, p.EscrowState, token, now, now.Add(chargeLease)); err != nil {
			if isConditionFailed(err) {
				return entities.Project{}, u.fundingConflict(ctx, p)
			}
			return entities.Project{}, err
		}
		paymentID, err := u.charger.charge(ctx, chargeRequest{
			Reference:   p.ID,
			Description: fmt.Sprintf("Escrow funding for project %s", p.ID),
			AmountCents: chargeCents,
			Payload:     payload,
		})
		if err != nil {
			if relErr := u.projects.ReleaseClaim(ctx, p.ID, token); relErr != nil {
				log.Printf("[project][usecase] funding claim not released project_id=%s err=%v", p.ID, relErr)
			}
			return entities.Project{}, err
		}
		conf.PaymentID = paymentID
	}

	next, err := escrow.ConfirmFunding(p, accepted, conf)
	if err != nil {
		return entities.Project{}, err
	}
	saved, err := u.persist(ctx, p, next)
	if err != nil {
		log.Printf("[project][usecase] funded charge not persisted project_id=%s payment_id=%s err=%v", p.ID, conf.PaymentID, err)
		if conf.PaymentID != "" && errors.Is(err, ErrConcurrentUpdate) {
			refundOrphanedCharge(ctx, u.ledger, p.ID, conf.PaymentID, chargeCents)
		}
		return entities.Project{}, err
	}

	if credit.ID != "" {
		if _, err := u.deposits.UpdateStatus(ctx, credit.ID, credit.Status, entities.DepositStatusCreditedToJob, ""); err != nil {
			log.Printf("[project][usecase] deposit credit not recorded project_id=%s deposit_id=%s err=%v", p.ID, credit.ID, err)
		} else {
			metrics.ObserveDepositTransition(string(credit.Status), string(entities.DepositStatusCreditedToJob))
		}
	}
	log.Printf("[project][usecase] funded project_id=%s held_cents=%d charged_cents=%d credited_deposit_id=%s", saved.ID, saved.Held(), chargeCents, credit.ID)
	return saved, nil
}

// fundingConflict explains a refused funding claim.
func (u *ProjectUseCase) fundingConflict(ctx context.Context, p entities.Project) error {
	fresh, err := u.load(ctx, p.ID)
	if err != nil {
		return err
	}
	if fresh.EscrowState != p.EscrowState {
		return ErrConcurrentUpdate
	}
	log.Printf("[project][usecase] funding already in progress project_id=%s", p.ID)
	return ErrChargeInProgress
}

func (u *ProjectUseCase) StartWork(ctx context.Context, actor entities.Actor, id string) (entities.Project, error) {
	return u.apply(ctx, id, func(p entities.Project) (entities.Project, error) {
		return escrow.StartWork(p, actor)
	})
}

func (u *ProjectUseCase) RequestCompletion(ctx context.Context, actor entities.Actor, id string) (entities.Project, error) {
	return u.apply(ctx, id, func(p entities.Project) (entities.Project, error) {
		return escrow.RequestCompletion(p, actor)
	})
}

// ApproveCompletion approves and releases the held funds to the contractor, fee subtracted.
// A project left in APPROVED_FOR_RELEASE by an interrupted call resumes at the release step.
func (u *ProjectUseCase) ApproveCompletion(ctx context.Context, actor entities.Actor, id string) (entities.Project, escrow.ReleaseBreakdown, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, escrow.ReleaseBreakdown{}, err
	}

	if p.EscrowState != entities.EscrowStateApprovedForRelease {
		approved, err := escrow.ApproveCompletion(p, actor)
		if err != nil {
			return entities.Project{}, escrow.ReleaseBreakdown{}, err
		}
		if p, err = u.persist(ctx, p, approved); err != nil {
			return entities.Project{}, escrow.ReleaseBreakdown{}, err
		}
	} else if actor.Role != entities.RoleCustomer || actor.ID != p.CustomerID {
		return entities.Project{}, escrow.ReleaseBreakdown{}, escrow.ErrCustomerOnly
	}

	released, payout, err := escrow.ReleasePayment(p, u.policy.Fees)
	if err != nil {
		return entities.Project{}, escrow.ReleaseBreakdown{}, err
	}
	err = recordSettlement(ctx, u.ledger, entities.Settlement{
		IdempotencyKey:        "release:" + p.ID,
		Kind:                  entities.SettlementKindCompletionRelease,
		ProjectID:             p.ID,
		OutcomeType:           entities.OutcomeReleaseFull,
		ContractorPayoutCents: payout.NetCents,
		PlatformFeeCents:      payout.FeeCents,
		CreatedAt:             time.Now().UTC(),
	})
	if err != nil {
		return entities.Project{}, escrow.ReleaseBreakdown{}, err
	}

	saved, err := u.persist(ctx, p, released)
	if err != nil {
		return entities.Project{}, escrow.ReleaseBreakdown{}, err
	}
	log.Printf("[project][usecase] released project_id=%s gross_cents=%d fee_cents=%d net_cents=%d", saved.ID, payout.GrossCents, payout.FeeCents, payout.NetCents)
	return saved, payout, nil
}

// RaiseIssue freezes the held funds and opens an admin case mirroring the held amount.
//
// Each project has at most one case, under an ID derived from the project. When an earlier
// call froze the funds but failed to write the case, repeating the call opens it.
func (u *ProjectUseCase) RaiseIssue(ctx context.Context, actor entities.Actor, id, reason string) (entities.Project, entities.DisputeCase, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, entities.DisputeCase{}, err
	}
	if p.EscrowState == entities.EscrowStateIssueRaisedHold {
		return u.reopenMissingCase(ctx, actor, p, reason)
	}

	next, err := escrow.RaiseIssue(p, actor, reason)
	if err != nil {
		return entities.Project{}, entities.DisputeCase{}, err
	}
	saved, err := u.persist(ctx, p, next)
	if err != nil {
		return entities.Project{}, entities.DisputeCase{}, err
	}
	created, err := u.openCase(ctx, saved, reason)
	if err != nil {
		return entities.Project{}, entities.DisputeCase{}, err
	}
	log.Printf("[project][usecase] issue raised project_id=%s case_id=%s held_cents=%d", saved.ID, created.ID, created.HeldAmountCents)
	return saved, created, nil
}

func (u *ProjectUseCase) reopenMissingCase(ctx context.Context, actor entities.Actor, p entities.Project, reason string) (entities.Project, entities.DisputeCase, error) {
	if actor.Role != entities.RoleCustomer || actor.ID != p.CustomerID {
		return entities.Project{}, entities.DisputeCase{}, escrow.ErrCustomerOnly
	}
	if len([]rune(strings.TrimSpace(reason))) < escrow.MinIssueReasonLength {
		return entities.Project{}, entities.DisputeCase{}, escrow.ErrInvalidReason
	}
	existing, err := u.cases.GetByID(ctx, disputeCaseID(p.ID))
	if err != nil {
		return entities.Project{}, entities.DisputeCase{}, err
	}
	if existing.ID != "" {
		return entities.Project{}, entities.DisputeCase{}, fmt.Errorf("%w: %s -> %s", escrow.ErrInvalidTransition, p.EscrowState, entities.EscrowStateIssueRaisedHold)
	}
	log.Printf("[project][usecase] dispute case missing, opening project_id=%s", p.ID)
	created, err := u.openCase(ctx, p, reason)
	if err != nil {
		return entities.Project{}, entities.DisputeCase{}, err
	}
	return p, created, nil
}

// openCase writes the project's dispute case. A case already written under the same ID by
// a concurrent call is returned as is.
func (u *ProjectUseCase) openCase(ctx context.Context, p entities.Project, reason string) (entities.DisputeCase, error) {
	now := time.Now().UTC()
	c := entities.DisputeCase{
		ID:              disputeCaseID(p.ID),
		ProjectID:       p.ID,
		CustomerID:      p.CustomerID,
		ContractorID:    p.ContractorID,
		Status:          entities.CaseStatusAdminAttentionRequired,
		Reason:          strings.TrimSpace(reason),
		HeldAmountCents: p.Held(),
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := u.cases.Create(ctx, c)
	if err != nil {
		if isConditionFailed(err) {
			return u.cases.GetByID(ctx, c.ID)
		}
		log.Printf("[project][usecase] dispute case create failed project_id=%s err=%v", p.ID, err)
		return entities.DisputeCase{}, err
	}
	return created, nil
}

// disputeCaseID derives the case ID from the project, so a project can only ever get one case.
func disputeCaseID(projectID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("dispute-case:"+projectID)).String()
}

func (u *ProjectUseCase) Cancel(ctx context.Context, actor entities.Actor, id string) (entities.Project, error) {
	return u.apply(ctx, id, func(p entities.Project) (entities.Project, error) {
		return escrow.CancelProject(p, actor)
	})
}

func (u *ProjectUseCase) Close(ctx context.Context, actor entities.Actor, id string) (entities.Project, error) {
	return u.apply(ctx, id, func(p entities.Project) (entities.Project, error) {
		return escrow.CloseProject(p, actor)
	})
}

func (u *ProjectUseCase) load(ctx context.Context, id string) (entities.Project, error) {
	return loadProject(ctx, u.projects, id)
}

func (u *ProjectUseCase) apply(ctx context.Context, id string, op func(entities.Project) (entities.Project, error)) (entities.Project, error) {
	p, err := u.load(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	next, err := op(p)
	if err != nil {
		return entities.Project{}, err
	}
	return u.persist(ctx, p, next)
}

func (u *ProjectUseCase) persist(ctx context.Context, before, after entities.Project) (entities.Project, error) {
	return persistProject(ctx, u.projects, before, after)
}

func (u *ProjectUseCase) acceptedQuote(ctx context.Context, p entities.Project) (entities.Quote, error) {
	quotes, err := u.quotes.ListByProjectID(ctx, p.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, q := range quotes {
		if q.ID == p.SelectedQuoteID {
			return q, nil
		}
	}
	return entities.Quote{}, escrow.ErrQuoteNotAccepted
}

func (u *ProjectUseCase) creditableDeposit(ctx context.Context, p entities.Project) (entities.EstimateDeposit, error) {
	if u.deposits == nil {
		return entities.EstimateDeposit{}, nil
	}
	deposits, err := u.deposits.ListByProjectID(ctx, p.ID)
	if err != nil {
		return entities.EstimateDeposit{}, err
	}
	var best entities.EstimateDeposit
	for _, d := range deposits {
		if d.ContractorID != p.ContractorID || !escrow.IsCreditable(d) {
			continue
		}
		if best.ID == "" || d.CreatedAt.After(best.CreatedAt) {
			best = d
		}
	}
	return best, nil
}

func loadProject(ctx context.Context, repo interfaces.IProjectRepository, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func persistProject(ctx context.Context, repo interfaces.IProjectRepository, before, after entities.Project) (entities.Project, error) {
	after.UpdatedAt = time.Now().UTC()
	saved, err := repo.Update(ctx, after, before.EscrowState)
	if err != nil {
		if isConditionFailed(err) {
			log.Printf("[project][usecase] concurrent update project_id=%s expected_state=%s", before.ID, before.EscrowState)
			return entities.Project{}, ErrConcurrentUpdate
		}
		return entities.Project{}, err
	}
	if before.EscrowState != after.EscrowState {
		metrics.ObserveTransition(string(before.EscrowState), string(after.EscrowState))
		log.Printf("[project][usecase] transition project_id=%s from=%s to=%s", before.ID, before.EscrowState, after.EscrowState)
	}
	return saved, nil
}

// recordSettlement hands an instruction to the ledger. A duplicate key means the
// instruction was already recorded by an earlier attempt and is not an error.
func recordSettlement(ctx context.Context, ledger interfaces.ISettlementLedger, s entities.Settlement) error {
	if ledger == nil {
		return errors.New("settlement ledger not configured")
	}
	if err := ledger.Record(ctx, s); err != nil {
		if errors.Is(err, interfaces.ErrDuplicateSettlement) {
			log.Printf("[settlement][usecase] already recorded key=%s", s.IdempotencyKey)
			return nil
		}
		log.Printf("[settlement][usecase] record failed key=%s err=%v", s.IdempotencyKey, err)
		return err
	}
	metrics.ObserveSettlement(s.ContractorPayoutCents, s.PlatformFeeCents, s.CustomerRefundCents)
	log.Printf("[settlement][usecase] recorded key=%s kind=%s contractor_cents=%d fee_cents=%d customer_cents=%d",
		s.IdempotencyKey, s.Kind, s.ContractorPayoutCents, s.PlatformFeeCents, s.CustomerRefundCents)
	return nil
}
