package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/domain/escrow"
	"contractor_escrow/internal/infrastructure/metrics"
	"contractor_escrow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IEstimateDepositUseCase manages the refundable deposit taken before an on-site estimate visit.
type IEstimateDepositUseCase interface {
	Preview(ctx context.Context, projectID string) (entities.DepositPreview, error)
	Create(ctx context.Context, actor entities.Actor, projectID string, expectedAmountCents int64) (entities.EstimateDeposit, error)
	Capture(ctx context.Context, actor entities.Actor, depositID string, payload json.RawMessage) (entities.EstimateDeposit, error)
	RecordAttendance(ctx context.Context, actor entities.Actor, depositID, outcome string) (entities.EstimateDeposit, error)
	Dispose(ctx context.Context, actor entities.Actor, depositID, disposition string) (entities.EstimateDeposit, error)
	GetByID(ctx context.Context, id string) (entities.EstimateDeposit, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.EstimateDeposit, error)
}

type EstimateDepositUseCase struct {
	projects interfaces.IProjectRepository
	deposits interfaces.IEstimateDepositRepository
	ledger   interfaces.ISettlementLedger
	charger  paymentCharger
	policy   Policy
	now      func() time.Time
}

var _ IEstimateDepositUseCase = (*EstimateDepositUseCase)(nil)

func NewEstimateDepositUseCase(
	projects interfaces.IProjectRepository,
	deposits interfaces.IEstimateDepositRepository,
	ledger interfaces.ISettlementLedger,
	gateway interfaces.IPaymentGateway,
	policy Policy,
) *EstimateDepositUseCase {
	return &EstimateDepositUseCase{
		projects: projects,
		deposits: deposits,
		ledger:   ledger,
		charger:  paymentCharger{gateway: gateway, testPayerEmail: policy.TestPayerEmail},
		policy:   policy,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *EstimateDepositUseCase) Preview(ctx context.Context, projectID string) (entities.DepositPreview, error) {
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return entities.DepositPreview{}, err
	}
	return escrow.PreviewDeposit(p, u.policy.Deposits), nil
}

// Create materializes the current preview. A non-zero expectedAmountCents must match it,
// so a client never confirms an amount it was not shown.
func (u *EstimateDepositUseCase) Create(ctx context.Context, actor entities.Actor, projectID string, expectedAmountCents int64) (entities.EstimateDeposit, error) {
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return entities.EstimateDeposit{}, err
	}
	if actor.Role != entities.RoleCustomer || actor.ID != p.CustomerID {
		return entities.EstimateDeposit{}, escrow.ErrCustomerOnly
	}

	preview := escrow.PreviewDeposit(p, u.policy.Deposits)
	if expectedAmountCents != 0 && expectedAmountCents != preview.AmountCents {
		return entities.EstimateDeposit{}, ErrDepositMismatch
	}
	d, err := escrow.NewDeposit(p, preview.AmountCents)
	if err != nil {
		return entities.EstimateDeposit{}, err
	}

	existing, err := u.deposits.ListByProjectID(ctx, p.ID)
	if err != nil {
		return entities.EstimateDeposit{}, err
	}
	for _, e := range existing {
		if e.ContractorID == p.ContractorID && isActiveDeposit(e.Status) {
			return entities.EstimateDeposit{}, ErrDepositExists
		}
	}

	now := u.now()
	d.ID = uuid.NewString()
	d.CreatedAt = now
	d.UpdatedAt = now
	created, err := u.deposits.Create(ctx, d)
	if err != nil {
		return entities.EstimateDeposit{}, err
	}
	log.Printf("[deposit][usecase] created deposit_id=%s project_id=%s contractor_id=%s amount_cents=%d", created.ID, p.ID, created.ContractorID, created.AmountCents)
	return created, nil
}

// Capture charges the deposit. The deposit is claimed before the provider is called, so of
// several concurrent captures only one charges; the others get ErrChargeInProgress, or
// ErrDepositAlreadyCaptured once the winner is done.
func (u *EstimateDepositUseCase) Capture(ctx context.Context, actor entities.Actor, depositID string, payload json.RawMessage) (entities.EstimateDeposit, error) {
	d, err := u.GetByID(ctx, depositID)
	if err != nil {
		return entities.EstimateDeposit{}, err
	}
	if actor.Role != entities.RoleCustomer || actor.ID != d.CustomerID {
		return entities.EstimateDeposit{}, escrow.ErrCustomerOnly
	}
	now := u.now()
	if _, err := escrow.CaptureDeposit(d, now, u.policy.Deposits.CaptureTTL); err != nil {
		return entities.EstimateDeposit{}, err
	}

	token := uuid.NewString()
	if err := u.deposits.Claim(ctx, d.ID, entities.DepositStatusCreated, token, now, now.Add(chargeLease)); err != nil {
		if isConditionFailed(err) {
			return entities.EstimateDeposit{}, u.captureConflict(ctx, d.ID)
		}
		return entities.EstimateDeposit{}, err
	}

	paymentID, err := u.charger.charge(ctx, chargeRequest{
		Reference:   d.ID,
		Description: fmt.Sprintf("Estimate deposit for project %s", d.ProjectID),
		AmountCents: d.AmountCents,
		Payload:     payload,
	})
	if err != nil {
		if relErr := u.deposits.ReleaseClaim(ctx, d.ID, token); relErr != nil {
			log.Printf("[deposit][usecase] capture claim not released deposit_id=%s err=%v", d.ID, relErr)
		}
		return entities.EstimateDeposit{}, err
	}

	captured, err := u.deposits.UpdateStatus(ctx, d.ID, entities.DepositStatusCreated, entities.DepositStatusCaptured, paymentID)
	if err != nil {
		if isConditionFailed(err) {
			log.Printf("[deposit][usecase] capture lost race deposit_id=%s payment_id=%s", d.ID, paymentID)
			refundOrphanedCharge(ctx, u.ledger, d.ProjectID, paymentID, d.AmountCents)
			return entities.EstimateDeposit{}, escrow.ErrDepositAlreadyCaptured
		}
		log.Printf("[deposit][usecase] captured charge not persisted deposit_id=%s payment_id=%s err=%v", d.ID, paymentID, err)
		return entities.EstimateDeposit{}, err
	}
	metrics.ObserveDepositTransition(string(entities.DepositStatusCreated), string(entities.DepositStatusCaptured))
	log.Printf("[deposit][usecase] captured deposit_id=%s payment_id=%s", d.ID, paymentID)
	return captured, nil
}

// captureConflict explains a refused capture claim.
func (u *EstimateDepositUseCase) captureConflict(ctx context.Context, depositID string) error {
	fresh, err := u.deposits.GetByID(ctx, depositID)
	if err != nil {
		return err
	}
	if fresh.Status != entities.DepositStatusCreated {
		return escrow.ErrDepositAlreadyCaptured
	}
	log.Printf("[deposit][usecase] capture already in progress deposit_id=%s", depositID)
	return ErrChargeInProgress
}

func (u *EstimateDepositUseCase) RecordAttendance(ctx context.Context, actor entities.Actor, depositID, outcome string) (entities.EstimateDeposit, error) {
	d, err := u.GetByID(ctx, depositID)
	if err != nil {
		return entities.EstimateDeposit{}, err
	}
	if actor.Role != entities.RoleAdmin && actor.ID != d.CustomerID && actor.ID != d.ContractorID {
		return entities.EstimateDeposit{}, ErrForbidden
	}
	next, err := escrow.RecordAttendance(d, parseDepositStatus(outcome))
	if err != nil {
		return entities.EstimateDeposit{}, err
	}
	return u.move(ctx, d, next.Status)
}

// Dispose applies the terminal disposition. Refunds are handed to the settlement ledger
// before the status changes, so a retried refund never pays twice.
func (u *EstimateDepositUseCase) Dispose(ctx context.Context, actor entities.Actor, depositID, disposition string) (entities.EstimateDeposit, error) {
	if actor.Role != entities.RoleAdmin {
		return entities.EstimateDeposit{}, ErrForbidden
	}
	d, err := u.GetByID(ctx, depositID)
	if err != nil {
		return entities.EstimateDeposit{}, err
	}
	next, err := escrow.DisposeDeposit(d, parseDepositStatus(disposition))
	if err != nil {
		return entities.EstimateDeposit{}, err
	}

	if next.Status == entities.DepositStatusRefunded {
		err := recordSettlement(ctx, u.ledger, entities.Settlement{
			IdempotencyKey:      "deposit-refund:" + d.ID,
			Kind:                entities.SettlementKindDepositRefund,
			ProjectID:           d.ProjectID,
			CustomerRefundCents: d.AmountCents,
			CreatedAt:           u.now(),
		})
		if err != nil {
			return entities.EstimateDeposit{}, err
		}
	}
	return u.move(ctx, d, next.Status)
}

func (u *EstimateDepositUseCase) GetByID(ctx context.Context, id string) (entities.EstimateDeposit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimateDeposit{}, ErrInvalidDepositID
	}
	d, err := u.deposits.GetByID(ctx, id)
	if err != nil {
		return entities.EstimateDeposit{}, err
	}
	if d.ID == "" {
		return entities.EstimateDeposit{}, ErrDepositNotFound
	}
	return d, nil
}

// ListByProject returns the project's deposits, newest first.
func (u *EstimateDepositUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.EstimateDeposit, error) {
	p, err := loadProject(ctx, u.projects, projectID)
	if err != nil {
		return nil, err
	}
	out, err := u.deposits.ListByProjectID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *EstimateDepositUseCase) move(ctx context.Context, d entities.EstimateDeposit, to entities.DepositStatus) (entities.EstimateDeposit, error) {
	saved, err := u.deposits.UpdateStatus(ctx, d.ID, d.Status, to, "")
	if err != nil {
		if isConditionFailed(err) {
			log.Printf("[deposit][usecase] concurrent update deposit_id=%s expected=%s", d.ID, d.Status)
			return entities.EstimateDeposit{}, ErrConcurrentUpdate
		}
		return entities.EstimateDeposit{}, err
	}
	metrics.ObserveDepositTransition(string(d.Status), string(to))
	log.Printf("[deposit][usecase] transition deposit_id=%s from=%s to=%s", d.ID, d.Status, to)
	return saved, nil
}

func parseDepositStatus(raw string) entities.DepositStatus {
	return entities.DepositStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

func isActiveDeposit(s entities.DepositStatus) bool {
	switch s {
	case entities.DepositStatusRefunded, entities.DepositStatusCreditedToJob, entities.DepositStatusClosed:
		return false
	}
	return true
}

// latestDepositFor picks the newest deposit for the contractor, or nil.
func latestDepositFor(deposits []entities.EstimateDeposit, contractorID string) *entities.EstimateDeposit {
	var latest *entities.EstimateDeposit
	for i := range deposits {
		d := deposits[i]
		if d.ContractorID != contractorID {
			continue
		}
		if latest == nil || d.CreatedAt.After(latest.CreatedAt) {
			latest = &d
		}
	}
	return latest
}
