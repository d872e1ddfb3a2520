package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"contractor_escrow/internal/domain/entities"
	"contractor_escrow/internal/domain/escrow"
	"contractor_escrow/internal/usecase/interfaces"
	mock_interfaces "contractor_escrow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type depositMocks struct {
	projects *mock_interfaces.MockIProjectRepository
	deposits *mock_interfaces.MockIEstimateDepositRepository
	ledger   *mock_interfaces.MockISettlementLedger
	gateway  *mock_interfaces.MockIPaymentGateway
}

var depositNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newDepositUseCase(t *testing.T) (*EstimateDepositUseCase, depositMocks) {
	ctrl := gomock.NewController(t)
	m := depositMocks{
		projects: mock_interfaces.NewMockIProjectRepository(ctrl),
		deposits: mock_interfaces.NewMockIEstimateDepositRepository(ctrl),
		ledger:   mock_interfaces.NewMockISettlementLedger(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewEstimateDepositUseCase(m.projects, m.deposits, m.ledger, m.gateway, DefaultPolicy())
	uc.now = func() time.Time { return depositNow }
	return uc, m
}

func createdDeposit() entities.EstimateDeposit {
	return entities.EstimateDeposit{
		ID:           "d-1",
		ProjectID:    "p-1",
		CustomerID:   customerActor.ID,
		ContractorID: contractorActor.ID,
		AmountCents:  4900,
		Status:       entities.DepositStatusCreated,
		CreatedAt:    depositNow.Add(-time.Hour),
	}
}

func expectDepositClaim(m depositMocks) *gomock.Call {
	return m.deposits.EXPECT().Claim(gomock.Any(), "d-1", entities.DepositStatusCreated, gomock.Any(), depositNow, depositNow.Add(chargeLease))
}

type memDepositRepo struct {
	mu         sync.Mutex
	deposits   map[string]entities.EstimateDeposit
	claimUntil map[string]time.Time
}

func (r *memDepositRepo) Create(_ context.Context, d entities.EstimateDeposit) (entities.EstimateDeposit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deposits[d.ID] = d
	return d, nil
}

func (r *memDepositRepo) GetByID(_ context.Context, id string) (entities.EstimateDeposit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deposits[id], nil
}

func (r *memDepositRepo) ListByProjectID(_ context.Context, projectID string) ([]entities.EstimateDeposit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.EstimateDeposit
	for _, d := range r.deposits {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *memDepositRepo) UpdateStatus(_ context.Context, id string, expected, next entities.DepositStatus, paymentID string) (entities.EstimateDeposit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deposits[id]
	if !ok || d.Status != expected {
		return entities.EstimateDeposit{}, interfaces.ErrConditionFailed
	}
	d.Status = next
	if paymentID != "" {
		d.PaymentID = paymentID
	}
	r.deposits[id] = d
	delete(r.claimUntil, id)
	return d, nil
}

func (r *memDepositRepo) Claim(_ context.Context, id string, expected entities.DepositStatus, _ string, now, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.deposits[id]
	if !ok || d.Status != expected || r.claimUntil[id].After(now) {
		return interfaces.ErrConditionFailed
	}
	r.claimUntil[id] = until
	return nil
}

func (r *memDepositRepo) ReleaseClaim(_ context.Context, id, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.claimUntil, id)
	return nil
}

type countingGateway struct {
	calls atomic.Int32
}

func (g *countingGateway) CreatePayment(_ context.Context, _ json.RawMessage) (string, string, json.RawMessage, error) {
	n := g.calls.Add(1)
	time.Sleep(5 * time.Millisecond)
	return fmt.Sprintf("pay-%d", n), "approved", json.RawMessage(`{}`), nil
}

func TestEstimateDepositUseCase_Preview(t *testing.T) {
	uc, m := newDepositUseCase(t)
	p := projectIn(entities.EscrowStateContractorSelected)
	p.Category = "unknown-trade"
	m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

	preview, err := uc.Preview(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.Category != escrow.GeneralCategory || preview.AmountCents != 3900 || preview.Rationale == "" {
		t.Fatalf("unexpected preview: %+v", preview)
	}
}

func TestEstimateDepositUseCase_Create(t *testing.T) {
	t.Run("contractor must be selected", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(projectIn(entities.EscrowStateOpenForQuotes), nil)
		_, err := uc.Create(context.Background(), customerActor, "p-1", 0)
		if !errors.Is(err, escrow.ErrContractorRequired) {
			t.Fatalf("expected ErrContractorRequired, got %v", err)
		}
	})

	t.Run("amount must match preview", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(projectIn(entities.EscrowStateContractorSelected), nil)
		_, err := uc.Create(context.Background(), customerActor, "p-1", 100)
		if !errors.Is(err, ErrDepositMismatch) {
			t.Fatalf("expected ErrDepositMismatch, got %v", err)
		}
	})

	t.Run("active deposit already exists", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(projectIn(entities.EscrowStateContractorSelected), nil)
		m.deposits.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return([]entities.EstimateDeposit{createdDeposit()}, nil)
		_, err := uc.Create(context.Background(), customerActor, "p-1", 0)
		if !errors.Is(err, ErrDepositExists) {
			t.Fatalf("expected ErrDepositExists, got %v", err)
		}
	})

	t.Run("creates from preview", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(projectIn(entities.EscrowStateContractorSelected), nil)
		refunded := createdDeposit()
		refunded.Status = entities.DepositStatusRefunded
		m.deposits.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return([]entities.EstimateDeposit{refunded}, nil)
		m.deposits.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EstimateDeposit{})).DoAndReturn(
			func(_ context.Context, d entities.EstimateDeposit) (entities.EstimateDeposit, error) { return d, nil },
		)

		d, err := uc.Create(context.Background(), customerActor, "p-1", 2900)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID == "" || d.Status != entities.DepositStatusCreated || d.AmountCents != 2900 || d.ContractorID != contractorActor.ID {
			t.Fatalf("unexpected deposit: %+v", d)
		}
	})
}

func TestEstimateDepositUseCase_Capture(t *testing.T) {
	t.Run("second capture is rejected before charging", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		d := createdDeposit()
		d.Status = entities.DepositStatusCaptured
		m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)

		_, err := uc.Capture(context.Background(), customerActor, "d-1", nil)
		if !errors.Is(err, escrow.ErrDepositAlreadyCaptured) {
			t.Fatalf("expected ErrDepositAlreadyCaptured, got %v", err)
		}
	})

	t.Run("expired deposit stays created", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		d := createdDeposit()
		d.CreatedAt = depositNow.Add(-72 * time.Hour)
		m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)

		_, err := uc.Capture(context.Background(), customerActor, "d-1", nil)
		if !errors.Is(err, escrow.ErrDepositCaptureExpired) {
			t.Fatalf("expected ErrDepositCaptureExpired, got %v", err)
		}
	})

	t.Run("capture in flight is refused before charging", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(createdDeposit(), nil).Times(2)
		expectDepositClaim(m).Return(interfaces.ErrConditionFailed)

		_, err := uc.Capture(context.Background(), customerActor, "d-1", nil)
		if !errors.Is(err, ErrChargeInProgress) {
			t.Fatalf("expected ErrChargeInProgress, got %v", err)
		}
	})

	t.Run("claim refused after another capture finished", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		captured := createdDeposit()
		captured.Status = entities.DepositStatusCaptured
		gomock.InOrder(
			m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(createdDeposit(), nil),
			expectDepositClaim(m).Return(interfaces.ErrConditionFailed),
			m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(captured, nil),
		)

		_, err := uc.Capture(context.Background(), customerActor, "d-1", nil)
		if !errors.Is(err, escrow.ErrDepositAlreadyCaptured) {
			t.Fatalf("expected ErrDepositAlreadyCaptured, got %v", err)
		}
	})

	t.Run("rejected charge releases the claim", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(createdDeposit(), nil)
		expectDepositClaim(m).Return(nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "rejected", json.RawMessage(`{}`), nil)
		m.deposits.EXPECT().ReleaseClaim(gomock.Any(), "d-1", gomock.Any()).Return(nil)

		if _, err := uc.Capture(context.Background(), customerActor, "d-1", nil); err == nil {
			t.Fatalf("expected the rejected charge to fail the capture")
		}
	})

	t.Run("lost race refunds the orphaned charge", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(createdDeposit(), nil)
		expectDepositClaim(m).Return(nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-2", "approved", json.RawMessage(`{}`), nil)
		m.deposits.EXPECT().UpdateStatus(gomock.Any(), "d-1", entities.DepositStatusCreated, entities.DepositStatusCaptured, "pay-2").
			Return(entities.EstimateDeposit{}, interfaces.ErrConditionFailed)
		m.ledger.EXPECT().Record(gomock.Any(), gomock.AssignableToTypeOf(entities.Settlement{})).DoAndReturn(
			func(_ context.Context, s entities.Settlement) error {
				if s.IdempotencyKey != "charge-refund:pay-2" || s.Kind != entities.SettlementKindChargeRefund || s.CustomerRefundCents != 4900 || s.ProjectID != "p-1" {
					t.Fatalf("unexpected settlement: %+v", s)
				}
				return nil
			},
		)

		_, err := uc.Capture(context.Background(), customerActor, "d-1", nil)
		if !errors.Is(err, escrow.ErrDepositAlreadyCaptured) {
			t.Fatalf("expected ErrDepositAlreadyCaptured, got %v", err)
		}
	})

	t.Run("captures", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(createdDeposit(), nil)
		expectDepositClaim(m).Return(nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				_ = json.Unmarshal(payload, &body)
				if body["transaction_amount"] != 49.0 || body["external_reference"] != "d-1" {
					t.Fatalf("unexpected payload: %v", body)
				}
				return "pay-1", "approved", json.RawMessage(`{}`), nil
			},
		)
		captured := createdDeposit()
		captured.Status = entities.DepositStatusCaptured
		captured.PaymentID = "pay-1"
		m.deposits.EXPECT().UpdateStatus(gomock.Any(), "d-1", entities.DepositStatusCreated, entities.DepositStatusCaptured, "pay-1").Return(captured, nil)

		d, err := uc.Capture(context.Background(), customerActor, "d-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !escrow.IsDepositCaptured(&d) {
			t.Fatalf("expected captured deposit, got %+v", d)
		}
	})

	t.Run("concurrent captures charge once", func(t *testing.T) {
		repo := &memDepositRepo{
			deposits:   map[string]entities.EstimateDeposit{"d-1": createdDeposit()},
			claimUntil: map[string]time.Time{},
		}
		gateway := &countingGateway{}
		ledger := &memLedger{records: map[string]entities.Settlement{}}
		uc := NewEstimateDepositUseCase(nil, repo, ledger, gateway, DefaultPolicy())
		uc.now = func() time.Time { return depositNow }

		const callers = 12
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			refused   int
		)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.Capture(context.Background(), customerActor, "d-1", nil)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case errors.Is(err, ErrChargeInProgress), errors.Is(err, escrow.ErrDepositAlreadyCaptured):
					refused++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		if successes != 1 || refused != callers-1 {
			t.Fatalf("expected exactly one capture, got successes=%d refused=%d", successes, refused)
		}
		if n := gateway.calls.Load(); n != 1 {
			t.Fatalf("expected a single charge, got %d", n)
		}
		if len(ledger.records) != 0 {
			t.Fatalf("expected no compensating refunds, got %d", len(ledger.records))
		}
	})
}

func TestEstimateDepositUseCase_AttendanceAndDisposition(t *testing.T) {
	t.Run("outsider cannot record attendance", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(createdDeposit(), nil)
		_, err := uc.RecordAttendance(context.Background(), entities.Actor{ID: "x", Role: entities.RoleContractor}, "d-1", "CONTRACTOR_ATTENDED")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("attendance requires capture", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(createdDeposit(), nil)
		_, err := uc.RecordAttendance(context.Background(), contractorActor, "d-1", "contractor_attended")
		if !errors.Is(err, escrow.ErrDepositInvalidStatus) {
			t.Fatalf("expected ErrDepositInvalidStatus, got %v", err)
		}
	})

	t.Run("records attendance", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		d := createdDeposit()
		d.Status = entities.DepositStatusCaptured
		m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)
		m.deposits.EXPECT().UpdateStatus(gomock.Any(), "d-1", entities.DepositStatusCaptured, entities.DepositStatusContractorAttended, "").
			Return(entities.EstimateDeposit{ID: "d-1", Status: entities.DepositStatusContractorAttended}, nil)

		got, err := uc.RecordAttendance(context.Background(), contractorActor, "d-1", " contractor_attended ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.DepositStatusContractorAttended {
			t.Fatalf("unexpected status: %s", got.Status)
		}
	})

	t.Run("only admins dispose", func(t *testing.T) {
		uc, _ := newDepositUseCase(t)
		_, err := uc.Dispose(context.Background(), customerActor, "d-1", "REFUNDED")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("refund records settlement first", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		d := createdDeposit()
		d.Status = entities.DepositStatusContractorNoShow
		m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)
		gomock.InOrder(
			m.ledger.EXPECT().Record(gomock.Any(), gomock.AssignableToTypeOf(entities.Settlement{})).DoAndReturn(
				func(_ context.Context, s entities.Settlement) error {
					if s.IdempotencyKey != "deposit-refund:d-1" || s.CustomerRefundCents != 4900 || s.Kind != entities.SettlementKindDepositRefund {
						t.Fatalf("unexpected settlement: %+v", s)
					}
					return nil
				},
			),
			m.deposits.EXPECT().UpdateStatus(gomock.Any(), "d-1", entities.DepositStatusContractorNoShow, entities.DepositStatusRefunded, "").
				Return(entities.EstimateDeposit{ID: "d-1", Status: entities.DepositStatusRefunded}, nil),
		)

		got, err := uc.Dispose(context.Background(), adminActor, "d-1", "refunded")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.DepositStatusRefunded {
			t.Fatalf("unexpected status: %s", got.Status)
		}
	})

	t.Run("invalid disposition", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		d := createdDeposit()
		d.Status = entities.DepositStatusCustomerAttended
		m.deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)
		_, err := uc.Dispose(context.Background(), adminActor, "d-1", "CAPTURED")
		if !errors.Is(err, escrow.ErrInvalidDisposition) {
			t.Fatalf("expected ErrInvalidDisposition, got %v", err)
		}
	})
}

func TestEstimateDepositUseCase_Getters(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newDepositUseCase(t)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidDepositID) {
			t.Fatalf("expected ErrInvalidDepositID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		m.deposits.EXPECT().GetByID(gomock.Any(), "d-9").Return(entities.EstimateDeposit{}, nil)
		if _, err := uc.GetByID(context.Background(), "d-9"); !errors.Is(err, ErrDepositNotFound) {
			t.Fatalf("expected ErrDepositNotFound, got %v", err)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		uc, m := newDepositUseCase(t)
		older := createdDeposit()
		newer := createdDeposit()
		newer.ID = "d-2"
		newer.CreatedAt = older.CreatedAt.Add(time.Minute)
		m.projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(projectIn(entities.EscrowStateContractorSelected), nil)
		m.deposits.EXPECT().ListByProjectID(gomock.Any(), "p-1").Return([]entities.EstimateDeposit{older, newer}, nil)

		out, err := uc.ListByProject(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 || out[0].ID != "d-2" {
			t.Fatalf("unexpected order: %+v", out)
		}
	})
}
