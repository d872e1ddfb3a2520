package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"sort"
	"strings"
	"time"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/domain/escrow"
	"contractor_escrow/internal/infrastructure/metrics"
	"contractor_escrow/internal/usecase/interfaces"
)

// resolutionLease is how long a claimed case belongs to the admin call that claimed it.
// After that, repeating the same action finishes an interrupted execution.
const resolutionLease = 2 * time.Minute

var allowedDocumentTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
}

type DocumentUpload struct {
	UploadURL   string        `json:"upload_url"`
	DocumentURL string        `json:"document_url"`
	ExpiresIn   time.Duration `json:"expires_in"`
}

type ResolveCaseInput struct {
	Action string
	// DocReference overrides the default reference for cases without a resolution document.
	DocReference string
}

// Resolution is the result of executing an admin decision on a case.
type Resolution struct {
	Case        entities.DisputeCase    `json:"case"`
	Project     entities.Project        `json:"project"`
	Payout      escrow.ReleaseBreakdown `json:"payout"`
	RefundCents int64                   `json:"refund_cents"`
}

// IDisputeUseCase is the admin console over dispute cases.
type IDisputeUseCase interface {
	GetCase(ctx context.Context, id string) (entities.DisputeCase, error)
	ListCases(ctx context.Context, bucket string) ([]entities.DisputeCase, error)
	Summary(ctx context.Context) (escrow.CaseSummary, error)
	RequestDocumentUpload(ctx context.Context, actor entities.Actor, caseID, contentType string) (DocumentUpload, error)
	MarkPendingExternal(ctx context.Context, actor entities.Actor, caseID string) (entities.DisputeCase, error)
	Resolve(ctx context.Context, actor entities.Actor, caseID string, in ResolveCaseInput) (Resolution, error)
}

type DisputeUseCase struct {
	cases    interfaces.IDisputeCaseRepository
	projects interfaces.IProjectRepository
	ledger   interfaces.ISettlementLedger
	docs     interfaces.IDocumentStore
	policy   Policy
}

var _ IDisputeUseCase = (*DisputeUseCase)(nil)

func NewDisputeUseCase(
	cases interfaces.IDisputeCaseRepository,
	projects interfaces.IProjectRepository,
	ledger interfaces.ISettlementLedger,
	docs interfaces.IDocumentStore,
	policy Policy,
) *DisputeUseCase {
	return &DisputeUseCase{cases: cases, projects: projects, ledger: ledger, docs: docs, policy: policy}
}

func (u *DisputeUseCase) GetCase(ctx context.Context, id string) (entities.DisputeCase, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DisputeCase{}, ErrInvalidCaseID
	}
	c, err := u.cases.GetByID(ctx, id)
	if err != nil {
		return entities.DisputeCase{}, err
	}
	if c.ID == "" {
		return entities.DisputeCase{}, ErrCaseNotFound
	}
	return c, nil
}

// ListCases returns cases newest first, optionally filtered by bucket (open, pending, resolved).
func (u *DisputeUseCase) ListCases(ctx context.Context, bucket string) ([]entities.DisputeCase, error) {
	all, err := u.cases.List(ctx)
	if err != nil {
		return nil, err
	}
	want := entities.CaseBucket(strings.ToLower(strings.TrimSpace(bucket)))
	out := make([]entities.DisputeCase, 0, len(all))
	for _, c := range all {
		if want != "" && escrow.ClassifyCase(c) != want {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *DisputeUseCase) Summary(ctx context.Context) (escrow.CaseSummary, error) {
	all, err := u.cases.List(ctx)
	if err != nil {
		return escrow.CaseSummary{}, err
	}
	return escrow.SummarizeCases(all), nil
}

// RequestDocumentUpload presigns an upload for the resolution document and records its
// final URL on the case, which then becomes the outcome's doc reference.
func (u *DisputeUseCase) RequestDocumentUpload(ctx context.Context, actor entities.Actor, caseID, contentType string) (DocumentUpload, error) {
	if actor.Role != entities.RoleAdmin {
		return DocumentUpload{}, ErrForbidden
	}
	if u.docs == nil {
		return DocumentUpload{}, fmt.Errorf("%w: document store not configured", ErrInvalidDocument)
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	ext, ok := allowedDocumentTypes[contentType]
	if !ok {
		return DocumentUpload{}, ErrInvalidDocument
	}
	c, err := u.GetCase(ctx, caseID)
	if err != nil {
		return DocumentUpload{}, err
	}
	if escrow.ClassifyCase(c) == entities.CaseBucketResolved {
		return DocumentUpload{}, escrow.ErrCaseAlreadyResolved
	}

	key := path.Join("cases", c.ID, fmt.Sprintf("resolution-%d%s", time.Now().UTC().Unix(), ext))
	uploadURL, expiresIn, err := u.docs.PresignUpload(ctx, key, contentType)
	if err != nil {
		log.Printf("[dispute][usecase] presign failed case_id=%s err=%v", c.ID, err)
		return DocumentUpload{}, err
	}

	next := c
	next.ResolutionDocURL = u.docs.ObjectURL(key)
	if _, err := u.updateCase(ctx, c, next); err != nil {
		return DocumentUpload{}, err
	}
	log.Printf("[dispute][usecase] document upload issued case_id=%s key=%s", c.ID, key)
	return DocumentUpload{UploadURL: uploadURL, DocumentURL: next.ResolutionDocURL, ExpiresIn: expiresIn}, nil
}

// MarkPendingExternal parks a case while an outside party (mediator, court) decides.
func (u *DisputeUseCase) MarkPendingExternal(ctx context.Context, actor entities.Actor, caseID string) (entities.DisputeCase, error) {
	if actor.Role != entities.RoleAdmin {
		return entities.DisputeCase{}, ErrForbidden
	}
	c, err := u.GetCase(ctx, caseID)
	if err != nil {
		return entities.DisputeCase{}, err
	}
	if escrow.ClassifyCase(c) == entities.CaseBucketResolved {
		return entities.DisputeCase{}, escrow.ErrCaseAlreadyResolved
	}
	p, err := loadProject(ctx, u.projects, c.ProjectID)
	if err != nil {
		return entities.DisputeCase{}, err
	}

	if p.EscrowState != entities.EscrowStateResolutionPendingExternal {
		next, err := escrow.AwaitExternalResolution(p)
		if err != nil {
			return entities.DisputeCase{}, err
		}
		if _, err := persistProject(ctx, u.projects, p, next); err != nil {
			return entities.DisputeCase{}, err
		}
	}

	parked := c
	parked.Status = entities.CaseStatusWaitingExternalResolution
	return u.updateCase(ctx, c, parked)
}

// Resolve executes an admin decision on a case.
//
// The case is claimed first with a version-checked write that records the action and
// outcome; of several concurrent calls only the claim winner goes on to move funds.
// A claimed case whose execution was interrupted is finished by repeating the same action
// once the claim lease has expired.
func (u *DisputeUseCase) Resolve(ctx context.Context, actor entities.Actor, caseID string, in ResolveCaseInput) (Resolution, error) {
	if actor.Role != entities.RoleAdmin {
		return Resolution{}, ErrForbidden
	}
	action, err := escrow.ParseDisputeAction(in.Action)
	if err != nil {
		return Resolution{}, err
	}
	c, err := u.GetCase(ctx, caseID)
	if err != nil {
		return Resolution{}, err
	}

	if escrow.ClassifyCase(c) == entities.CaseBucketResolved {
		if !isInterruptedResolution(c, action) {
			metrics.ObserveResolution(string(action), "conflict")
			return Resolution{}, escrow.ErrCaseAlreadyResolved
		}
		log.Printf("[dispute][usecase] resuming resolution case_id=%s action=%s", c.ID, action)
		return u.execute(ctx, c)
	}

	p, err := loadProject(ctx, u.projects, c.ProjectID)
	if err != nil {
		return Resolution{}, err
	}
	if !escrow.IsDisputeState(p.EscrowState) {
		// A concurrent resolution may have claimed the case and executed since it was read.
		if fresh, err := u.cases.GetByID(ctx, c.ID); err == nil && fresh.Version != c.Version {
			metrics.ObserveResolution(string(action), "conflict")
			return Resolution{}, escrow.ErrCaseAlreadyResolved
		}
		return Resolution{}, escrow.ErrProjectNotInDispute
	}

	defaultRef := strings.TrimSpace(in.DocReference)
	if defaultRef == "" {
		defaultRef = u.policy.defaultDocReference(c.ID)
	}
	outcome, err := escrow.ComputeOutcome(c.HeldAmountCents, action, c.ResolutionDocURL, defaultRef)
	if err != nil {
		return Resolution{}, err
	}

	claim := c
	claim.Status = entities.CaseStatusResolutionSubmitted
	claim.ResolutionAction = action
	claim.Outcome = &outcome
	claim.ResolvedBy = actor.ID
	claimed, err := u.updateCase(ctx, c, claim)
	if err != nil {
		if errors.Is(err, ErrConcurrentUpdate) {
			metrics.ObserveResolution(string(outcome.OutcomeType), "conflict")
			return Resolution{}, escrow.ErrCaseAlreadyResolved
		}
		return Resolution{}, err
	}
	log.Printf("[dispute][usecase] case claimed case_id=%s outcome=%s release_cents=%d refund_cents=%d doc_reference=%s",
		c.ID, outcome.OutcomeType, outcome.ReleaseToContractorCents, outcome.RefundToCustomerCents, outcome.DocReference)
	return u.execute(ctx, claimed)
}

// execute carries a claimed case through submission, settlement and execution. Each step
// is skipped when the project already passed it.
func (u *DisputeUseCase) execute(ctx context.Context, c entities.DisputeCase) (Resolution, error) {
	outcome := *c.Outcome
	p, err := loadProject(ctx, u.projects, c.ProjectID)
	if err != nil {
		return Resolution{}, err
	}

	if p.EscrowState == entities.EscrowStateIssueRaisedHold || p.EscrowState == entities.EscrowStateResolutionPendingExternal {
		submitted, err := escrow.SubmitResolution(p)
		if err != nil {
			return Resolution{}, err
		}
		if p, err = persistProject(ctx, u.projects, p, submitted); err != nil {
			return Resolution{}, err
		}
	}

	payout, refund := escrow.Settle(outcome, u.policy.Fees)
	if p.EscrowState == entities.EscrowStateResolutionSubmitted {
		err := recordSettlement(ctx, u.ledger, entities.Settlement{
			IdempotencyKey:        c.ID + ":" + outcome.DocReference,
			Kind:                  entities.SettlementKindDisputeOutcome,
			ProjectID:             p.ID,
			CaseID:                c.ID,
			OutcomeType:           outcome.OutcomeType,
			ContractorPayoutCents: payout.NetCents,
			PlatformFeeCents:      payout.FeeCents,
			CustomerRefundCents:   refund,
			DocReference:          outcome.DocReference,
			CreatedAt:             time.Now().UTC(),
		})
		if err != nil {
			metrics.ObserveResolution(string(outcome.OutcomeType), "error")
			return Resolution{}, err
		}

		executed, err := escrow.ExecuteOutcome(p, outcome)
		if err != nil {
			log.Printf("[dispute][usecase] outcome rejected case_id=%s project_id=%s err=%v", c.ID, p.ID, err)
			metrics.ObserveResolution(string(outcome.OutcomeType), "error")
			return Resolution{}, err
		}
		if p, err = persistProject(ctx, u.projects, p, executed); err != nil {
			return Resolution{}, err
		}
	}

	expected, err := escrow.ExecutedStateFor(outcome.OutcomeType)
	if err != nil {
		return Resolution{}, err
	}
	if p.EscrowState != expected {
		return Resolution{}, fmt.Errorf("%w: project %s is %s", escrow.ErrInvalidTransition, p.ID, p.EscrowState)
	}

	resolved := c
	resolved.Status = entities.CaseStatusResolved
	saved, err := u.updateCase(ctx, c, resolved)
	if err != nil {
		return Resolution{}, err
	}
	metrics.ObserveResolution(string(outcome.OutcomeType), "ok")
	log.Printf("[dispute][usecase] resolved case_id=%s project_id=%s state=%s", saved.ID, p.ID, p.EscrowState)
	return Resolution{Case: saved, Project: p, Payout: payout, RefundCents: refund}, nil
}

func (u *DisputeUseCase) updateCase(ctx context.Context, before, after entities.DisputeCase) (entities.DisputeCase, error) {
	after.UpdatedAt = time.Now().UTC()
	saved, err := u.cases.Update(ctx, after, before.Version)
	if err != nil {
		if isConditionFailed(err) {
			log.Printf("[dispute][usecase] concurrent update case_id=%s expected_version=%d", before.ID, before.Version)
			return entities.DisputeCase{}, ErrConcurrentUpdate
		}
		return entities.DisputeCase{}, err
	}
	return saved, nil
}

func isInterruptedResolution(c entities.DisputeCase, action entities.DisputeAction) bool {
	return c.Status == entities.CaseStatusResolutionSubmitted &&
		c.Outcome != nil &&
		c.ResolutionAction == action &&
		time.Since(c.UpdatedAt) > resolutionLease
}
