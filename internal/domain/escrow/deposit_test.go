package escrow

import (
	"errors"
	"testing"
	"time"

	"contractor_escrow/internal/domain/entities"
)

func TestPreviewDeposit(t *testing.T) {
	policy := DefaultDepositPolicy()
	cases := []struct {
		category     string
		wantCategory string
		wantAmount   int64
	}{
		{category: "plumbing", wantCategory: "plumbing", wantAmount: 2900},
		{category: " Roofing ", wantCategory: "roofing", wantAmount: 7900},
		{category: "HVAC", wantCategory: "hvac", wantAmount: 5900},
		{category: "kitchen", wantCategory: "kitchen", wantAmount: 3900},
		{category: "", wantCategory: "general", wantAmount: 3900},
		{category: "pool-building", wantCategory: "general", wantAmount: 3900},
	}
	for _, tc := range cases {
		t.Run(tc.category, func(t *testing.T) {
			got := PreviewDeposit(entities.Project{Category: tc.category}, policy)
			if got.Category != tc.wantCategory || got.AmountCents != tc.wantAmount {
				t.Fatalf("unexpected preview: %+v", got)
			}
			if got.Rationale == "" {
				t.Fatalf("expected rationale")
			}
		})
	}
}

func TestDepositPolicy_WithOverrides(t *testing.T) {
	base := DefaultDepositPolicy()
	p := base.WithOverrides(map[string]int64{" Roofing ": 9900, "pools": 4900, "painting": 0})
	if p.AmountsByCategory["roofing"] != 9900 || p.AmountsByCategory["pools"] != 4900 || p.AmountsByCategory["painting"] != 2900 {
		t.Fatalf("unexpected overrides: %+v", p.AmountsByCategory)
	}
	if base.AmountsByCategory["roofing"] != 7900 {
		t.Fatalf("base policy mutated")
	}

	empty := DepositPolicy{}
	if got := PreviewDeposit(entities.Project{Category: "x"}, empty); got.AmountCents != 3900 {
		t.Fatalf("expected builtin general fallback, got %d", got.AmountCents)
	}
}

func TestNewDeposit(t *testing.T) {
	p := entities.Project{ID: "p-1", CustomerID: "cust-1", Category: "roofing"}
	if _, err := NewDeposit(p, 7900); !errors.Is(err, ErrContractorRequired) {
		t.Fatalf("expected ErrContractorRequired, got %v", err)
	}
	p.ContractorID = "ctr-1"
	if _, err := NewDeposit(p, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	d, err := NewDeposit(p, 7900)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Status != entities.DepositStatusCreated || d.AmountCents != 7900 || d.ContractorID != "ctr-1" || d.CustomerID != "cust-1" {
		t.Fatalf("unexpected deposit: %+v", d)
	}
}

func TestCaptureDeposit(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d := entities.EstimateDeposit{ID: "d-1", Status: entities.DepositStatusCreated, CreatedAt: now.Add(-time.Hour)}

	captured, err := CaptureDeposit(d, now, 48*time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Status != entities.DepositStatusCaptured {
		t.Fatalf("expected CAPTURED, got %s", captured.Status)
	}

	if _, err := CaptureDeposit(captured, now, 48*time.Hour); !errors.Is(err, ErrDepositAlreadyCaptured) {
		t.Fatalf("second capture must fail, got %v", err)
	}

	stale := d
	stale.CreatedAt = now.Add(-49 * time.Hour)
	got, err := CaptureDeposit(stale, now, 48*time.Hour)
	if !errors.Is(err, ErrDepositCaptureExpired) {
		t.Fatalf("expected ErrDepositCaptureExpired, got %v", err)
	}
	if got.Status != entities.DepositStatusCreated {
		t.Fatalf("expired deposit must stay CREATED")
	}

	if _, err := CaptureDeposit(stale, now, 0); err != nil {
		t.Fatalf("zero ttl disables expiry, got %v", err)
	}
}

func TestDepositGraphIsMonotonic(t *testing.T) {
	order := make(map[entities.DepositStatus]int, len(entities.AllDepositStatuses))
	for i, s := range entities.AllDepositStatuses {
		order[s] = i
	}
	for _, from := range entities.AllDepositStatuses {
		for _, to := range entities.AllDepositStatuses {
			if CanTransitionDeposit(from, to) && order[to] <= order[from] {
				t.Fatalf("back-edge %s -> %s", from, to)
			}
		}
	}
	if CanTransitionDeposit(entities.DepositStatusCreated, entities.DepositStatusRefunded) {
		t.Fatalf("uncaptured deposits cannot be refunded")
	}
}

func TestAttendanceAndDisposition(t *testing.T) {
	d := entities.EstimateDeposit{Status: entities.DepositStatusCaptured}

	if _, err := RecordAttendance(d, entities.DepositStatusRefunded); !errors.Is(err, ErrInvalidAttendance) {
		t.Fatalf("expected ErrInvalidAttendance, got %v", err)
	}
	if _, err := DisposeDeposit(d, entities.DepositStatusRefunded); !errors.Is(err, ErrDepositInvalidStatus) {
		t.Fatalf("captured deposit needs an attendance outcome first, got %v", err)
	}

	attended, err := RecordAttendance(d, entities.DepositStatusContractorAttended)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsCreditable(attended) {
		t.Fatalf("attended deposit should be creditable")
	}
	if _, err := RecordAttendance(attended, entities.DepositStatusCustomerNoShow); !errors.Is(err, ErrDepositInvalidStatus) {
		t.Fatalf("expected ErrDepositInvalidStatus, got %v", err)
	}
	if _, err := DisposeDeposit(attended, entities.DepositStatusCaptured); !errors.Is(err, ErrInvalidDisposition) {
		t.Fatalf("expected ErrInvalidDisposition, got %v", err)
	}

	credited, err := DisposeDeposit(attended, entities.DepositStatusCreditedToJob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := DisposeDeposit(credited, entities.DepositStatusRefunded); !errors.Is(err, ErrDepositInvalidStatus) {
		t.Fatalf("dispositions are terminal, got %v", err)
	}
}

func TestIsDepositCaptured(t *testing.T) {
	if IsDepositCaptured(nil) {
		t.Fatalf("nil deposit is not captured")
	}
	want := map[entities.DepositStatus]bool{
		entities.DepositStatusCreated:            false,
		entities.DepositStatusCaptured:           true,
		entities.DepositStatusContractorAttended: true,
		entities.DepositStatusCustomerAttended:   true,
		entities.DepositStatusContractorNoShow:   false,
		entities.DepositStatusCustomerNoShow:     false,
		entities.DepositStatusRefunded:           false,
		entities.DepositStatusCreditedToJob:      true,
		entities.DepositStatusClosed:             true,
	}
	for status, expected := range want {
		d := &entities.EstimateDeposit{Status: status}
		if got := IsDepositCaptured(d); got != expected {
			t.Fatalf("%s: expected %v, got %v", status, expected, got)
		}
	}
}
